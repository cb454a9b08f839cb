package rollup

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestReportService_AssembleOwnerReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	firstDay := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	definition := &domain.MetricDefinition{
		ID:             "abc123",
		OwnerID:        "joao.martins",
		MinimumTarget:  7,
		StandardTarget: 10,
		StretchTarget:  13,
	}

	t.Run("Relatório com nome resolvido pelo diretório", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
		ownerDirectory := mocks.NewMockOwnerDirectory(ctrl)

		metricRepo.EXPECT().
			ListByOwner("joao.martins", domain.MetricCategory("")).
			Return([]*domain.MetricDefinition{definition}, nil)
		entryRepo.EXPECT().
			GetByMetricAndRange("abc123", firstDay, lastDay).
			Return(monthEntries("abc123", 2025, 6, []float64{8}, []bool{true}), nil)
		metricRepo.EXPECT().GetByID("abc123").Return(definition, nil)

		ownerDirectory.EXPECT().GetOwnerName("joao.martins").Return("João Martins", nil)

		reports := NewReportService(NewService(entryRepo, metricRepo), ownerDirectory)
		report, err := reports.AssembleOwnerReport("joao.martins", 2025, time.June)

		assert.NoError(t, err)
		assert.Equal(t, "João Martins", report.OwnerName)
		assert.Equal(t, 2025, report.Year)
		assert.Equal(t, time.June, report.Month)
		assert.Len(t, report.Rollups, 1)
	})

	t.Run("Falha ao resolver o nome degrada para relatório sem nome", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
		ownerDirectory := mocks.NewMockOwnerDirectory(ctrl)

		metricRepo.EXPECT().
			ListByOwner("joao.martins", domain.MetricCategory("")).
			Return([]*domain.MetricDefinition{}, nil)
		ownerDirectory.EXPECT().GetOwnerName("joao.martins").Return("", errors.New("erro no banco de dados"))

		reports := NewReportService(NewService(entryRepo, metricRepo), ownerDirectory)
		report, err := reports.AssembleOwnerReport("joao.martins", 2025, time.June)

		assert.NoError(t, err)
		assert.Empty(t, report.OwnerName)
	})

	t.Run("Erro ao computar agregados é propagado", func(t *testing.T) {
		entryRepo := mocks.NewMockDailyEntryRepository(ctrl)
		metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
		ownerDirectory := mocks.NewMockOwnerDirectory(ctrl)

		metricRepo.EXPECT().
			ListByOwner("joao.martins", domain.MetricCategory("")).
			Return(nil, errors.New("erro no banco de dados"))

		reports := NewReportService(NewService(entryRepo, metricRepo), ownerDirectory)
		report, err := reports.AssembleOwnerReport("joao.martins", 2025, time.June)

		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
