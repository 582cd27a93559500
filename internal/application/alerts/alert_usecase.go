package alerts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/repository"
)

// GenerateAlertsUseCase evalúa el dataset analizado contra el estado actual de los libros
// y envía cada alerta al notificador. Nunca modifica los libros.
type GenerateAlertsUseCase struct {
	records  repository.AnalyzedRecordRepository
	ledgers  LedgerViewer
	notifier ports.Notifier
	metrics  ports.MetricsRecorder
	log      zerolog.Logger
}

// NewGenerateAlertsUseCase construye el caso de uso. metrics puede ser nil.
func NewGenerateAlertsUseCase(
	records repository.AnalyzedRecordRepository,
	ledgers LedgerViewer,
	notifier ports.Notifier,
	metrics ports.MetricsRecorder,
	log zerolog.Logger,
) *GenerateAlertsUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &GenerateAlertsUseCase{
		records:  records,
		ledgers:  ledgers,
		notifier: notifier,
		metrics:  metrics,
		log:      log,
	}
}

// Generate relee los registros, evalúa cada uno y lo notifica.
// Los fallos por registro (región sin libro, entrega fallida) quedan en el ítem
// correspondiente y no detienen el lote. Solo falla si no se pueden leer los registros.
func (uc *GenerateAlertsUseCase) Generate(ctx context.Context, filter dto.AlertFilter) (*dto.AlertBatchDTO, error) {
	records, err := uc.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: leer registros analizados: %w", err)
	}

	batch := &dto.AlertBatchDTO{ID: uuid.NewString(), Items: []dto.AlertItemDTO{}}
	log := uc.log.With().Str("batch_id", batch.ID).Logger()

	for result, evalErr := range Evaluate(records, uc.ledgers, filter) {
		item := toAlertItem(result)
		batch.Total++

		if evalErr != nil {
			item.Error = evalErr.Error()
			batch.Unevaluable++
			batch.Items = append(batch.Items, item)
			log.Error().Err(evalErr).Msg("registro no evaluable")
			continue
		}

		uc.metrics.Alert(string(result.Sentiment), string(result.Capacity))
		item.Message = FormatMessage(result)

		if err := uc.notifier.Notify(ctx, item.Message); err != nil {
			if !errors.Is(err, domain.ErrNotificationDeliveryFailure) {
				err = fmt.Errorf("%w: %v", domain.ErrNotificationDeliveryFailure, err)
			}
			item.DeliveryError = err.Error()
			batch.Failed++
			uc.metrics.Notification("failed")
			log.Warn().Err(err).Str("region", result.Region).Str("month", result.Month).Msg("alerta no entregada")
		} else {
			item.Delivered = true
			batch.Delivered++
			uc.metrics.Notification("ok")
		}
		batch.Items = append(batch.Items, item)
	}

	log.Info().
		Str("region_filter", filter.Region).
		Str("month_filter", filter.Month).
		Int("total", batch.Total).
		Int("delivered", batch.Delivered).
		Int("failed", batch.Failed).
		Msg("alertas generadas")
	return batch, nil
}

func toAlertItem(r entity.AlertResult) dto.AlertItemDTO {
	return dto.AlertItemDTO{
		Region:         r.Region,
		Month:          r.Month,
		Year:           r.Year,
		SentimentScore: r.SentimentScore,
		Sentiment:      string(r.Sentiment),
		Capacity:       string(r.Capacity),
		AvailableSpace: r.AvailableSpace,
		WarehouseSize:  r.WarehouseSize,
		RiskAnalysis:   r.RiskAnalysis,
	}
}
