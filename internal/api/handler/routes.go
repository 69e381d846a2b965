package handler

import (
	"net/http"

	"github.com/vfg2006/sales-kpi-api/infrastructure/repository"
	"github.com/vfg2006/sales-kpi-api/internal/api/handler/router"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/summarizing"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/tracking"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Months(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months/:month",
			Method:  http.MethodGet,
			Handler: GetMonthState(service),
		},
		{
			Path:    "/v1/months/:month/targets",
			Method:  http.MethodPut,
			Handler: UpdateTargets(service),
		},
		{
			Path:    "/v1/months/:month/associates",
			Method:  http.MethodPost,
			Handler: CreateAssociate(service),
		},
		{
			Path:    "/v1/months/:month/associates/:id/metrics/:metric",
			Method:  http.MethodPut,
			Handler: UpdateAssociateMetric(service),
		},
		{
			Path:    "/v1/months/:month/associates/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAssociate(service),
		},
	}
}

func Reports(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months/:month/report",
			Method:  http.MethodGet,
			Handler: GetMonthReport(service),
		},
		{
			Path:    "/v1/months/:month/summary",
			Method:  http.MethodGet,
			Handler: GetMonthSummary(service),
		},
	}
}

func Transfer(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months/:month/export/csv",
			Method:  http.MethodGet,
			Handler: ExportMonthCSV(service),
		},
		{
			Path:    "/v1/months/:month/export/json",
			Method:  http.MethodGet,
			Handler: ExportMonthJSON(service),
		},
		{
			Path:    "/v1/import",
			Method:  http.MethodPost,
			Handler: ImportMonth(service),
		},
	}
}

func EmailSettings(repo repository.EmailSettingsRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings/email",
			Method:  http.MethodGet,
			Handler: GetEmailSettings(repo),
		},
		{
			Path:    "/v1/settings/email",
			Method:  http.MethodPut,
			Handler: UpdateEmailSettings(repo),
		},
	}
}

func Summary(dispatcher summarizing.Dispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summary/send",
			Method:  http.MethodPost,
			Handler: SendSummary(dispatcher),
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
