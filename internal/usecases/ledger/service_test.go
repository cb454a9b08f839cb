package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// invalidationRecorder registra as chaves invalidadas para inspeção nos testes
type invalidationRecorder struct {
	keys []domain.RollupKey
}

func (r *invalidationRecorder) Invalidate(key domain.RollupKey) {
	r.keys = append(r.keys, key)
}

func TestService_UpsertEntry_ProRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Meta mínima mensal 14 em junho (30 dias): meta diária 14/30 = 0.4667
	definition := &domain.MetricDefinition{
		ID:             "abc123",
		OwnerID:        "joao.martins",
		MinimumTarget:  14,
		StandardTarget: 20,
		StretchTarget:  26,
	}

	tests := []struct {
		name             string
		date             time.Time
		actualValue      float64
		expectedAchieved bool
	}{
		{
			name:             "Valor acima da meta diária rateada",
			date:             time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			actualValue:      0.5,
			expectedAchieved: true,
		},
		{
			name:             "Valor abaixo da meta diária rateada",
			date:             time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			actualValue:      0.3,
			expectedAchieved: false,
		},
		{
			name:             "Fim de semana conta como dia normal do rateio",
			date:             time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), // domingo
			actualValue:      1,
			expectedAchieved: true,
		},
		{
			name:             "Fevereiro tem rateio maior por ter menos dias",
			date:             time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), // 14/28 = 0.5
			actualValue:      0.5,
			expectedAchieved: true,
		},
		{
			name:             "Valor zero nunca atinge a meta diária",
			date:             time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			actualValue:      0,
			expectedAchieved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
			metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

			metricRepo.EXPECT().GetByID("abc123").Return(definition, nil)

			var persisted *domain.DailyEntry
			entryRepo.EXPECT().
				Upsert(gomock.Any()).
				DoAndReturn(func(entry *domain.DailyEntry) error {
					persisted = entry
					return nil
				})

			service := NewService(entryRepo, metricRepo)
			entry, err := service.UpsertEntry("abc123", "joao.martins", tt.date, tt.actualValue, "")

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAchieved, entry.Achieved)
			assert.Equal(t, entry, persisted)
			assert.Equal(t, tt.date, entry.Date)
		})
	}
}

func TestService_UpsertEntry_Idempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	definition := &domain.MetricDefinition{ID: "abc123", MinimumTarget: 14}
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

	metricRepo.EXPECT().GetByID("abc123").Return(definition, nil).Times(2)
	entryRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	service := NewService(entryRepo, metricRepo)

	// Repetir a mesma escrita deixa o razão no mesmo estado observável
	first, err := service.UpsertEntry("abc123", "joao.martins", date, 2.5, "reposição")
	assert.NoError(t, err)

	second, err := service.UpsertEntry("abc123", "joao.martins", date, 2.5, "reposição")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Key(), second.Key())
}

func TestService_UpsertEntry_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Valor negativo é rejeitado antes de tocar o banco", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		service := NewService(entryRepo, metricRepo)
		entry, err := service.UpsertEntry("abc123", "joao.martins", date, -1, "")

		assert.ErrorIs(t, err, ErrNegativeValue)
		assert.True(t, IsValidationError(err))
		assert.Nil(t, entry)
	})

	t.Run("Responsável vazio é rejeitado", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		service := NewService(entryRepo, metricRepo)
		_, err := service.UpsertEntry("abc123", "", date, 1, "")

		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("Lançamento para indicador excluído é rejeitado", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		metricRepo.EXPECT().GetByID("naoexiste").Return(nil, nil)

		service := NewService(entryRepo, metricRepo)
		_, err := service.UpsertEntry("naoexiste", "joao.martins", date, 1, "")

		assert.ErrorIs(t, err, ErrMetricNotFound)
	})
}

func TestService_UpsertEntry_DefaultsToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

	metricRepo.EXPECT().GetByID("abc123").Return(&domain.MetricDefinition{ID: "abc123", MinimumTarget: 14}, nil)
	entryRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	service := NewService(entryRepo, metricRepo)
	entry, err := service.UpsertEntry("abc123", "joao.martins", time.Time{}, 1, "")

	assert.NoError(t, err)
	assert.False(t, entry.Date.IsZero())

	now := time.Now().UTC()
	assert.Equal(t, now.Year(), entry.Date.Year())
	assert.Equal(t, now.Month(), entry.Date.Month())
	assert.Equal(t, now.Day(), entry.Date.Day())
}

func TestService_UpsertEntry_InvalidatesRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

	metricRepo.EXPECT().GetByID("abc123").Return(&domain.MetricDefinition{ID: "abc123", MinimumTarget: 14}, nil)
	entryRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	recorder := &invalidationRecorder{}
	service := NewService(entryRepo, metricRepo).WithInvalidator(recorder)

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := service.UpsertEntry("abc123", "joao.martins", date, 2, "")

	assert.NoError(t, err)
	assert.Len(t, recorder.keys, 1)
	assert.Equal(t, domain.RollupKey{MetricID: "abc123", Year: 2025, Month: time.June}, recorder.keys[0])
}

func TestService_GetEntriesInRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("Consulta com intervalo válido", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		expected := []*domain.DailyEntry{{MetricID: "abc123", OwnerID: "joao.martins"}}
		entryRepo.EXPECT().
			GetByOwnerAndRange("joao.martins", []string{"abc123"}, start, end).
			Return(expected, nil)

		service := NewService(entryRepo, metricRepo)
		entries, err := service.GetEntriesInRange("joao.martins", []string{"abc123"}, start, end)

		assert.NoError(t, err)
		assert.Equal(t, expected, entries)
	})

	t.Run("Início posterior ao fim é rejeitado", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		service := NewService(entryRepo, metricRepo)
		_, err := service.GetEntriesInRange("joao.martins", nil, end, start)

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Responsável vazio é rejeitado", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)

		service := NewService(entryRepo, metricRepo)
		_, err := service.GetEntriesInRange("", nil, start, end)

		assert.ErrorIs(t, err, ErrOwnerRequired)
	})
}
