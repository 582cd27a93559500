// Package csvstore implementa los puertos de lectura del dataset analizado y de
// escritura del snapshot de inventario sobre archivos CSV.
package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/repository"
	"github.com/jhoicas/inventario-riesgos/internal/domain/risk"
)

// Columnas requeridas del dataset analizado.
const (
	ColRegion         = "Region"
	ColMonth          = "Month"
	ColYear           = "Year"
	ColComment        = "Comment"
	ColSentiment      = "Sentiment"
	ColSentimentScore = "Sentiment Score"
	ColRiskAnalysis   = "Risk Analysis"
)

var requiredColumns = []string{
	ColRegion, ColMonth, ColYear, ColComment, ColSentiment, ColSentimentScore, ColRiskAnalysis,
}

var _ repository.AnalyzedRecordRepository = (*AnalyzedRecordRepo)(nil)

// AnalyzedRecordRepo registros analizados ya validados, en memoria y en orden del archivo.
type AnalyzedRecordRepo struct {
	records []entity.AnalyzedRecord
	regions []string
}

// NewAnalyzedRecordRepo construye el repositorio a partir de registros ya validados.
func NewAnalyzedRecordRepo(records []entity.AnalyzedRecord) *AnalyzedRecordRepo {
	seen := make(map[string]struct{})
	var regions []string
	for _, r := range records {
		if _, ok := seen[r.Region]; ok {
			continue
		}
		seen[r.Region] = struct{}{}
		regions = append(regions, r.Region)
	}
	return &AnalyzedRecordRepo{records: records, regions: regions}
}

// LoadAnalyzedRecords abre el CSV y valida todas las filas.
// Cualquier problema de esquema devuelve un error que envuelve domain.ErrInputSchema.
// Un archivo que no es UTF-8 válido se decodifica como Windows-1252 (exportaciones de Excel).
func LoadAnalyzedRecords(path string) (*AnalyzedRecordRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir dataset analizado %s: %w", path, err)
	}
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	}
	return ReadAnalyzedRecords(r)
}

// ReadAnalyzedRecords lee el dataset desde r. Las columnas se ubican por nombre
// (cualquier orden; columnas extra se ignoran).
func ReadAnalyzedRecords(r io.Reader) (*AnalyzedRecordRepo, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInputSchema)
		}
		return nil, fmt.Errorf("%w: leer cabecera: %v", domain.ErrInputSchema, err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		idx[h] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan columnas %v", domain.ErrInputSchema, missing)
	}

	var records []entity.AnalyzedRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrInputSchema, line, err)
		}
		rec, err := parseRecord(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrInputSchema, line, err)
		}
		records = append(records, rec)
	}

	return NewAnalyzedRecordRepo(records), nil
}

func parseRecord(row []string, idx map[string]int) (entity.AnalyzedRecord, error) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	region := field(ColRegion)
	if region == "" {
		return entity.AnalyzedRecord{}, fmt.Errorf("%s vacío", ColRegion)
	}

	year, err := parseYear(field(ColYear))
	if err != nil {
		return entity.AnalyzedRecord{}, err
	}

	score, err := strconv.ParseFloat(field(ColSentimentScore), 64)
	if err != nil || math.IsNaN(score) || score < 0 || score > 1 {
		return entity.AnalyzedRecord{}, fmt.Errorf("%s fuera de [0,1]: %q", ColSentimentScore, field(ColSentimentScore))
	}

	comment := field(ColComment)
	analysis := field(ColRiskAnalysis)
	if analysis == "" {
		analysis = risk.AnalyzeComment(comment)
	}

	return entity.AnalyzedRecord{
		Region:         region,
		Month:          field(ColMonth),
		Year:           year,
		Comment:        comment,
		SentimentLabel: field(ColSentiment),
		SentimentScore: score,
		RiskAnalysis:   analysis,
	}, nil
}

// parseYear acepta "2024" y también "2024.0" (como lo escribe pandas con columnas float).
func parseYear(s string) (int, error) {
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s inválido: %q", ColYear, s)
	}
	return int(f), nil
}

// List devuelve una copia de los registros en el orden del archivo.
func (r *AnalyzedRecordRepo) List(_ context.Context) ([]entity.AnalyzedRecord, error) {
	out := make([]entity.AnalyzedRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Regions devuelve las regiones distintas en orden de primera aparición.
func (r *AnalyzedRecordRepo) Regions(_ context.Context) ([]string, error) {
	out := make([]string, len(r.regions))
	copy(out, r.regions)
	return out, nil
}
