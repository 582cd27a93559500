package alerts_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-riesgos/internal/application/alerts"
	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type stubRecords struct {
	records []entity.AnalyzedRecord
	err     error
	calls   int
}

func (s *stubRecords) List(context.Context) ([]entity.AnalyzedRecord, error) {
	s.calls++
	return s.records, s.err
}

func (s *stubRecords) Regions(context.Context) ([]string, error) { return nil, nil }

// recordingNotifier falla para los mensajes que contienen failOn.
type recordingNotifier struct {
	failOn   string
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, msg string) error {
	n.messages = append(n.messages, msg)
	if n.failOn != "" && strings.Contains(msg, n.failOn) {
		return errors.New("webhook HTTP 500")
	}
	return nil
}

func TestGenerate_NotificaCadaAlerta(t *testing.T) {
	src := &stubRecords{records: testRecords()}
	notifier := &recordingNotifier{}
	uc := alerts.NewGenerateAlertsUseCase(src, newStore(), notifier, nil, zerolog.Nop())

	batch, err := uc.Generate(context.Background(), dto.AlertFilter{})
	require.NoError(t, err)

	assert.NotEmpty(t, batch.ID)
	assert.Equal(t, 3, batch.Total)
	assert.Equal(t, 3, batch.Delivered)
	assert.Len(t, notifier.messages, 3)
	assert.Equal(t, batch.Items[0].Message, notifier.messages[0])
	assert.True(t, batch.Items[0].Delivered)
	assert.Equal(t, string(entity.SentimentHighRisk), batch.Items[0].Sentiment)
}

func TestGenerate_FalloDeEntregaNoDetieneElLote(t *testing.T) {
	src := &stubRecords{records: testRecords()}
	notifier := &recordingNotifier{failOn: "Region: South"}
	store := newStore()
	before, _ := store.View("South")

	uc := alerts.NewGenerateAlertsUseCase(src, store, notifier, nil, zerolog.Nop())
	batch, err := uc.Generate(context.Background(), dto.AlertFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, batch.Total)
	assert.Equal(t, 2, batch.Delivered)
	assert.Equal(t, 1, batch.Failed)
	assert.False(t, batch.Items[1].Delivered)
	assert.Contains(t, batch.Items[1].DeliveryError, domain.ErrNotificationDeliveryFailure.Error())
	assert.True(t, batch.Items[2].Delivered, "las alertas siguientes se siguen enviando")

	after, _ := store.View("South")
	assert.Equal(t, before, after, "la notificación nunca modifica el libro")
}

func TestGenerate_RegistroNoEvaluable(t *testing.T) {
	src := &stubRecords{records: append(testRecords(), entity.AnalyzedRecord{Region: "Atlantis", Month: "March"})}
	notifier := &recordingNotifier{}
	uc := alerts.NewGenerateAlertsUseCase(src, newStore(), notifier, nil, zerolog.Nop())

	batch, err := uc.Generate(context.Background(), dto.AlertFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, batch.Total)
	assert.Equal(t, 1, batch.Unevaluable)
	assert.Len(t, notifier.messages, 3, "el registro sin libro no se notifica")
	assert.Contains(t, batch.Items[3].Error, domain.ErrUnknownRegion.Error())
}

func TestGenerate_RecargaRegistrosEnCadaLlamada(t *testing.T) {
	src := &stubRecords{records: testRecords()}
	uc := alerts.NewGenerateAlertsUseCase(src, newStore(), &recordingNotifier{}, nil, zerolog.Nop())

	_, _ = uc.Generate(context.Background(), dto.AlertFilter{})
	_, _ = uc.Generate(context.Background(), dto.AlertFilter{Month: "January"})
	assert.Equal(t, 2, src.calls)
}

func TestGenerate_ErrorDeFuente(t *testing.T) {
	src := &stubRecords{err: errors.New("disco lleno")}
	uc := alerts.NewGenerateAlertsUseCase(src, newStore(), &recordingNotifier{}, nil, zerolog.Nop())

	_, err := uc.Generate(context.Background(), dto.AlertFilter{})
	assert.Error(t, err)
}
