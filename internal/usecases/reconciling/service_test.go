package reconciling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/rollup"
	"go.uber.org/mock/gomock"
)

func TestService_SyncRollupToDefinition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	firstDay := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	definitions := []*domain.MetricDefinition{
		{ID: "abc123", OwnerID: "joao.martins", MinimumTarget: 140, StandardTarget: 200, StretchTarget: 260},
		{ID: "def456", OwnerID: "joao.martins", MinimumTarget: 7, StandardTarget: 10, StretchTarget: 13},
	}

	entriesFor := func(metricID string, values ...float64) []*domain.DailyEntry {
		entries := make([]*domain.DailyEntry, 0, len(values))
		for i, value := range values {
			entries = append(entries, &domain.DailyEntry{
				MetricID:    metricID,
				Date:        time.Date(2025, 6, i+1, 0, 0, 0, 0, time.UTC),
				ActualValue: value,
				Achieved:    true,
			})
		}
		return entries
	}

	t.Run("Grava o total realizado de cada indicador em um único lote", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		metricRepo.EXPECT().ListByOwner("joao.martins", domain.MetricCategory("")).Return(definitions, nil)

		entryRepo.EXPECT().
			GetByMetricAndRange("abc123", firstDay, lastDay).
			Return(entriesFor("abc123", 100, 110), nil)
		metricRepo.EXPECT().GetByID("abc123").Return(definitions[0], nil)

		entryRepo.EXPECT().
			GetByMetricAndRange("def456", firstDay, lastDay).
			Return(entriesFor("def456", 3, 4, 5), nil)
		metricRepo.EXPECT().GetByID("def456").Return(definitions[1], nil)

		var batch []*domain.CurrentValueUpdate
		metricRepo.EXPECT().
			UpdateCurrentValues(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updates []*domain.CurrentValueUpdate) error {
				batch = updates
				return nil
			})

		rollupService := rollup.NewService(entryRepo, metricRepo)
		service := NewService(rollupService, metricRepo)

		result, err := service.SyncRollupToDefinition(context.Background(), "joao.martins", 2025, time.June)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.MetricsSynced)
		assert.Equal(t, "joao.martins", result.OwnerID)
		assert.False(t, result.SyncedAt.IsZero())

		assert.Len(t, batch, 2)
		totals := map[string]float64{}
		for _, update := range batch {
			totals[update.MetricID] = update.CurrentValue
			// Todo o lote carrega o mesmo carimbo de horário
			assert.Equal(t, result.SyncedAt, update.UpdatedAt)
		}
		assert.Equal(t, 210.0, totals["abc123"])
		assert.Equal(t, 12.0, totals["def456"])
	})

	t.Run("Falha no lote impede qualquer escrita parcial", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		metricRepo.EXPECT().ListByOwner("joao.martins", domain.MetricCategory("")).Return(definitions[:1], nil)
		entryRepo.EXPECT().
			GetByMetricAndRange("abc123", firstDay, lastDay).
			Return(entriesFor("abc123", 50), nil)
		metricRepo.EXPECT().GetByID("abc123").Return(definitions[0], nil)

		metricRepo.EXPECT().
			UpdateCurrentValues(gomock.Any(), gomock.Any()).
			Return(errors.New("erro no banco de dados"))

		rollupService := rollup.NewService(entryRepo, metricRepo)
		service := NewService(rollupService, metricRepo)

		result, err := service.SyncRollupToDefinition(context.Background(), "joao.martins", 2025, time.June)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Responsável sem indicadores não grava lote", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		metricRepo.EXPECT().
			ListByOwner("pedro.alves", domain.MetricCategory("")).
			Return([]*domain.MetricDefinition{}, nil)

		rollupService := rollup.NewService(entryRepo, metricRepo)
		service := NewService(rollupService, metricRepo)

		result, err := service.SyncRollupToDefinition(context.Background(), "pedro.alves", 2025, time.June)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.MetricsSynced)
	})

	t.Run("Erro ao computar agregados interrompe a reconciliação", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		metricRepo.EXPECT().
			ListByOwner("joao.martins", domain.MetricCategory("")).
			Return(nil, errors.New("erro no banco de dados"))

		rollupService := rollup.NewService(entryRepo, metricRepo)
		service := NewService(rollupService, metricRepo)

		result, err := service.SyncRollupToDefinition(context.Background(), "joao.martins", 2025, time.June)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
