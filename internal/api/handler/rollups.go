package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reconciling"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/rollup"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

// ReportAssembler monta o relatório mensal de um responsável
type ReportAssembler interface {
	AssembleOwnerReport(ownerID string, year int, month time.Month) (*domain.OwnerRollupReport, error)
}

// GetMonthlyRollup retorna o agregado mensal derivado de um indicador
func GetMonthlyRollup(service rollup.RollupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		year, month, ok := parseYearMonth(w, r)
		if !ok {
			return
		}

		monthly, err := service.ComputeMonthlyRollup(metricID, year, month)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"metric_id": metricID,
				"year":      year,
				"month":     int(month),
			}).Error("rollups: erro ao computar agregado mensal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(monthly); err != nil {
			logger.WithError(err).Error("rollups: erro ao codificar resposta")
		}
	})
}

// GetOwnerRollupReport retorna os agregados mensais de todos os indicadores
// do responsável em um período
func GetOwnerRollupReport(reports ReportAssembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		year, month, ok := parseYearMonth(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"year":     year,
			"month":    int(month),
		}).Info("rollups: montando relatório mensal do responsável")

		report, err := reports.AssembleOwnerReport(ownerID, year, month)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"owner_id": ownerID,
			}).Error("rollups: erro ao montar relatório mensal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"metrics":  len(report.Rollups),
		}).Info("rollups: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("rollups: erro ao codificar resposta")
		}
	})
}

// SyncOwnerRollups dispara a reconciliação dos valores consolidados do
// responsável para o período informado
func SyncOwnerRollups(reconciler reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		year, month, ok := parseYearMonth(w, r)
		if !ok {
			return
		}

		result, err := reconciler.SyncRollupToDefinition(r.Context(), ownerID, year, month)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"owner_id": ownerID,
				"year":     year,
				"month":    int(month),
			}).Error("rollups: erro ao reconciliar valores consolidados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("rollups: erro ao codificar resposta")
		}
	})
}

// parseYearMonth extrai e valida os parâmetros year e month da query string
func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" || monthStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar year e month nos parâmetros", nil)
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 9999 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use um valor entre 1 e 12", nil)
		return 0, 0, false
	}

	return year, time.Month(month), true
}
