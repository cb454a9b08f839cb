package rollup

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

// ReportService monta o relatório mensal do responsável, enriquecendo os
// agregados com o nome resolvido pelo diretório de responsáveis
type ReportService struct {
	rollupService  RollupService
	ownerDirectory repository.OwnerDirectory
}

// NewReportService cria uma nova instância do serviço de relatórios
func NewReportService(
	rollupService RollupService,
	ownerDirectory repository.OwnerDirectory,
) *ReportService {
	return &ReportService{
		rollupService:  rollupService,
		ownerDirectory: ownerDirectory,
	}
}

// AssembleOwnerReport computa a visão mensal de todos os indicadores do
// responsável. Um responsável fora do diretório não é erro: o relatório sai
// sem nome, para que os painéis degradem sem quebrar
func (s *ReportService) AssembleOwnerReport(ownerID string, year int, month time.Month) (*domain.OwnerRollupReport, error) {
	rollups, err := s.rollupService.ComputeAll(ownerID, year, month)
	if err != nil {
		return nil, err
	}

	ownerName, err := s.ownerDirectory.GetOwnerName(ownerID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner_id": ownerID,
		}).Warn("Erro ao resolver nome do responsável")
		ownerName = ""
	}

	return &domain.OwnerRollupReport{
		OwnerID:   ownerID,
		OwnerName: ownerName,
		Year:      year,
		Month:     month,
		Rollups:   rollups,
	}, nil
}
