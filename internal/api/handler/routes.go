package handler

import (
	"net/http"

	"github.com/vfg2006/kpi-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/ledger"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/metric"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reconciling"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/rollup"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service metric.MetricService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/owners/:id/metrics",
			Method:  http.MethodGet,
			Handler: ListMetrics(service),
		},
		{
			Path:    "/v1/owners/:id/metrics",
			Method:  http.MethodPost,
			Handler: CreateMetric(service),
		},
		{
			Path:    "/v1/owners/:id/metrics/template",
			Method:  http.MethodPost,
			Handler: AssignTemplate(service),
		},
		{
			Path:    "/v1/metrics/:id",
			Method:  http.MethodPut,
			Handler: UpdateMetric(service),
		},
		{
			Path:    "/v1/metrics/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMetric(service),
		},
	}
}

func DailyEntries(service ledger.LedgerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/:id/entries",
			Method:  http.MethodPut,
			Handler: UpsertDailyEntry(service),
		},
		{
			Path:    "/v1/owners/:id/entries",
			Method:  http.MethodGet,
			Handler: GetEntriesInRange(service),
		},
	}
}

func Rollups(service rollup.RollupService, reports ReportAssembler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/:id/rollup",
			Method:  http.MethodGet,
			Handler: GetMonthlyRollup(service),
		},
		{
			Path:    "/v1/owners/:id/rollups",
			Method:  http.MethodGet,
			Handler: GetOwnerRollupReport(reports),
		},
	}
}

func Reconciliation(reconciler reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/owners/:id/rollups/sync",
			Method:  http.MethodPost,
			Handler: SyncOwnerRollups(reconciler),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
