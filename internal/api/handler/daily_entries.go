package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/ledger"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// UpsertDailyEntryRequest é o corpo da gravação de um lançamento diário
type UpsertDailyEntryRequest struct {
	OwnerID     string  `json:"owner_id"`
	Date        string  `json:"date"` // Formato yyyy-mm-dd; vazio usa a data de hoje
	ActualValue float64 `json:"actual_value"`
	Notes       string  `json:"notes,omitempty"`
}

// UpsertDailyEntry grava o valor realizado de um dia para o indicador da
// URL. A operação é idempotente pela chave (indicador, dia)
func UpsertDailyEntry(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request UpsertDailyEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			err = errors.Wrap(err, "erro ao decodificar corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		date, err := utils.ParseDate(request.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato yyyy-mm-dd", nil)
			return
		}

		entry, err := service.UpsertEntry(metricID, request.OwnerID, *date, request.ActualValue, request.Notes)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"metric_id": metricID,
				"owner_id":  request.OwnerID,
			}).Error("entries: erro ao gravar lançamento diário")
			writeLedgerError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"metric_id": metricID,
			"owner_id":  request.OwnerID,
		}).Info("entries: lançamento diário gravado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logger.WithError(err).Error("entries: erro ao codificar resposta")
		}
	})
}

// GetEntriesInRange retorna os lançamentos do responsável no intervalo de
// datas, com filtro opcional de indicadores (metric_ids separados por vírgula)
func GetEntriesInRange(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida. Use o formato yyyy-mm-dd", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida. Use o formato yyyy-mm-dd", nil)
			return
		}

		if startDate.IsZero() || endDate.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar start_date e end_date", nil)
			return
		}

		var metricIDs []string
		if rawIDs := r.URL.Query().Get("metric_ids"); rawIDs != "" {
			metricIDs = strings.Split(rawIDs, ",")
		}

		entries, err := service.GetEntriesInRange(ownerID, metricIDs, *startDate, *endDate)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"owner_id":   ownerID,
				"start_date": startDate.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
			}).Error("entries: erro ao buscar lançamentos")
			writeLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("entries: erro ao codificar resposta")
		}
	})
}

// writeLedgerError traduz erros do razão para o envelope padronizado da API
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNegativeValue):
		apiErrors.WriteError(w, apiErrors.ErrNegativeValue, err.Error(), nil)
	case ledger.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, ledger.ErrMetricNotFound):
		apiErrors.WriteError(w, apiErrors.ErrMetricNotFound, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	}
}
