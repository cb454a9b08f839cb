package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/metric"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CreateMetric cria um indicador para o responsável informado na URL
func CreateMetric(service metric.MetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if ownerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Responsável não informado", nil)
			return
		}

		var spec domain.MetricSpec
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			err = errors.Wrap(err, "erro ao decodificar corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		definition, err := service.Create(ownerID, &spec)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"owner_id": ownerID,
			}).Error("metrics: erro ao criar indicador")
			writeMetricError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id":  ownerID,
			"metric_id": definition.ID,
		}).Info("metrics: indicador criado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(definition); err != nil {
			logger.WithError(err).Error("metrics: erro ao codificar resposta")
		}
	})
}

// ListMetrics lista os indicadores do responsável, com filtro opcional de
// categoria via query string
func ListMetrics(service metric.MetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		category := domain.MetricCategory(r.URL.Query().Get("category"))

		definitions, err := service.ListByOwnerAndCategory(ownerID, category)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"owner_id": ownerID,
			}).Error("metrics: erro ao listar indicadores")
			writeMetricError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(definitions); err != nil {
			logger.WithError(err).Error("metrics: erro ao codificar resposta")
		}
	})
}

// UpdateMetric aplica uma atualização parcial a um indicador
func UpdateMetric(service metric.MetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var update domain.MetricUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			err = errors.Wrap(err, "erro ao decodificar corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		definition, err := service.Update(metricID, &update)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"metric_id": metricID,
			}).Error("metrics: erro ao atualizar indicador")
			writeMetricError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(definition); err != nil {
			logger.WithError(err).Error("metrics: erro ao codificar resposta")
		}
	})
}

// DeleteMetric remove a definição de um indicador
func DeleteMetric(service metric.MetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(metricID); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"metric_id": metricID,
			}).Error("metrics: erro ao excluir indicador")
			writeMetricError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// AssignTemplateRequest é o corpo da atribuição de modelo de indicadores
type AssignTemplateRequest struct {
	MetricTypes []string `json:"metric_types"`
}

// AssignTemplate cria ou sobrescreve os indicadores de modelo do responsável
func AssignTemplate(service metric.MetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request AssignTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			err = errors.Wrap(err, "erro ao decodificar corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if len(request.MetricTypes) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum tipo de indicador informado", nil)
			return
		}

		definitions, err := service.AssignTemplate(ownerID, request.MetricTypes)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"owner_id": ownerID,
			}).Error("metrics: erro ao atribuir modelo")
			writeMetricError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"metrics":  len(definitions),
		}).Info("metrics: modelo atribuído com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(definitions); err != nil {
			logger.WithError(err).Error("metrics: erro ao codificar resposta")
		}
	})
}

// writeMetricError traduz erros do serviço de indicadores para o envelope
// padronizado da API
func writeMetricError(w http.ResponseWriter, err error) {
	switch {
	case metric.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case metric.IsInvariantViolation(err):
		apiErrors.WriteError(w, apiErrors.ErrTierOrderViolated, err.Error(), nil)
	case errors.Is(err, metric.ErrMetricNotFound):
		apiErrors.WriteError(w, apiErrors.ErrMetricNotFound, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	}
}
