package metric

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// Fatores de derivação das metas mínima e de superação quando apenas a
// meta padrão é informada
const (
	minimumTargetFactor = 0.7
	stretchTargetFactor = 1.3
)

type MetricService interface {
	Create(ownerID string, spec *domain.MetricSpec) (*domain.MetricDefinition, error)
	Update(id string, update *domain.MetricUpdate) (*domain.MetricDefinition, error)
	Delete(id string) error
	GetByID(id string) (*domain.MetricDefinition, error)
	ListByOwner(ownerID string) ([]*domain.MetricDefinition, error)
	ListByOwnerAndCategory(ownerID string, category domain.MetricCategory) ([]*domain.MetricDefinition, error)
	AssignTemplate(ownerID string, metricTypes []string) ([]*domain.MetricDefinition, error)
}

type Service struct {
	cfg        *config.Config
	metricRepo repository.MetricDefinitionRepository
}

// NewService cria uma nova instância do serviço de indicadores
func NewService(metricRepo repository.MetricDefinitionRepository, cfg *config.Config) MetricService {
	return &Service{
		cfg:        cfg,
		metricRepo: metricRepo,
	}
}

// Create cria um indicador para o responsável. Metas mínima e de superação
// omitidas são derivadas da meta padrão (0.7x e 1.3x, arredondadas)
func (s *Service) Create(ownerID string, spec *domain.MetricSpec) (*domain.MetricDefinition, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	tiers := deriveTiers(spec)
	if !tiers.Ordered() {
		return nil, ErrTierOrderViolated
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	now := time.Now()
	definition := &domain.MetricDefinition{
		ID:             id,
		OwnerID:        ownerID,
		Category:       spec.Category,
		Type:           spec.Type,
		Name:           spec.Name,
		Unit:           spec.Unit,
		MinimumTarget:  tiers.Minimum,
		StandardTarget: tiers.Standard,
		StretchTarget:  tiers.Stretch,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.metricRepo.SaveOrUpdate(definition); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner_id":    ownerID,
			"metric_type": spec.Type,
		}).Error("Erro ao gravar indicador")
		return nil, err
	}

	return definition, nil
}

// Update aplica uma atualização parcial e revalida o invariante de
// ordenação das metas sobre o resultado da mesclagem
func (s *Service) Update(id string, update *domain.MetricUpdate) (*domain.MetricDefinition, error) {
	definition, err := s.metricRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if definition == nil {
		return nil, ErrMetricNotFound
	}

	merged := *definition
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Unit != nil {
		merged.Unit = *update.Unit
	}
	if update.MinimumTarget != nil {
		merged.MinimumTarget = *update.MinimumTarget
	}
	if update.StandardTarget != nil {
		merged.StandardTarget = *update.StandardTarget
	}
	if update.StretchTarget != nil {
		merged.StretchTarget = *update.StretchTarget
	}

	if merged.Unit == "" {
		return nil, ErrUnitRequired
	}
	if merged.MinimumTarget < 0 || merged.StandardTarget < 0 || merged.StretchTarget < 0 {
		return nil, ErrNegativeTarget
	}
	if !merged.Tiers().Ordered() {
		return nil, ErrTierOrderViolated
	}

	merged.UpdatedAt = time.Now()
	if err := s.metricRepo.SaveOrUpdate(&merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

// Delete remove a definição do indicador. Os lançamentos diários não são
// removidos de forma síncrona; a limpeza é responsabilidade de um
// colaborador externo
func (s *Service) Delete(id string) error {
	definition, err := s.metricRepo.GetByID(id)
	if err != nil {
		return err
	}
	if definition == nil {
		return ErrMetricNotFound
	}

	return s.metricRepo.Delete(id)
}

func (s *Service) GetByID(id string) (*domain.MetricDefinition, error) {
	return s.metricRepo.GetByID(id)
}

func (s *Service) ListByOwner(ownerID string) ([]*domain.MetricDefinition, error) {
	return s.metricRepo.ListByOwner(ownerID, "")
}

func (s *Service) ListByOwnerAndCategory(ownerID string, category domain.MetricCategory) ([]*domain.MetricDefinition, error) {
	if category != "" && !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return s.metricRepo.ListByOwner(ownerID, category)
}

// AssignTemplate cria (ou sobrescreve, pela chave responsável+tipo) um
// indicador para cada tipo do modelo, usando a meta padrão fixa da
// configuração e a derivação 0.7x/1.3x. A sobrescrita substitui o registro
// inteiro: metas customizadas pré-existentes para o tipo são descartadas.
// As definições retornadas carregam o id efetivamente gravado: na
// sobrescrita, o id do registro vigente é mantido pelo banco
func (s *Service) AssignTemplate(ownerID string, metricTypes []string) ([]*domain.MetricDefinition, error) {
	standardTarget := s.cfg.MetricTemplate.DefaultStandardTarget

	definitions := make([]*domain.MetricDefinition, 0, len(metricTypes))
	for _, metricType := range metricTypes {
		if metricType == "" {
			return nil, ErrTypeRequired
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, ErrGenerateID
		}

		now := time.Now()
		definition := &domain.MetricDefinition{
			ID:             id,
			OwnerID:        ownerID,
			Category:       domain.CategorySales,
			Type:           metricType,
			Name:           metricType,
			Unit:           s.cfg.MetricTemplate.DefaultUnit,
			MinimumTarget:  utils.RoundToNearest(standardTarget * minimumTargetFactor),
			StandardTarget: standardTarget,
			StretchTarget:  utils.RoundToNearest(standardTarget * stretchTargetFactor),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := s.metricRepo.SaveOrUpdateByOwnerAndType(definition); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"owner_id":    ownerID,
				"metric_type": metricType,
			}).Error("Erro ao atribuir indicador de modelo")
			return nil, err
		}

		definitions = append(definitions, definition)
	}

	logrus.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"metrics":  len(definitions),
	}).Info("Modelo de indicadores atribuído com sucesso")

	return definitions, nil
}

func validateSpec(spec *domain.MetricSpec) error {
	if spec.Unit == "" {
		return ErrUnitRequired
	}
	if !spec.Category.IsValid() {
		return ErrInvalidCategory
	}
	if spec.StandardTarget < 0 {
		return ErrNegativeTarget
	}
	if spec.MinimumTarget != nil && *spec.MinimumTarget < 0 {
		return ErrNegativeTarget
	}
	if spec.StretchTarget != nil && *spec.StretchTarget < 0 {
		return ErrNegativeTarget
	}
	return nil
}

func deriveTiers(spec *domain.MetricSpec) domain.TargetTiers {
	tiers := domain.TargetTiers{Standard: spec.StandardTarget}

	if spec.MinimumTarget != nil {
		tiers.Minimum = *spec.MinimumTarget
	} else {
		tiers.Minimum = utils.RoundToNearest(spec.StandardTarget * minimumTargetFactor)
	}

	if spec.StretchTarget != nil {
		tiers.Stretch = *spec.StretchTarget
	} else {
		tiers.Stretch = utils.RoundToNearest(spec.StandardTarget * stretchTargetFactor)
	}

	return tiers
}
