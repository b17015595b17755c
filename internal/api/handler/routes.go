package handler

import (
	"net/http"

	"github.com/vfg2006/lead-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/category"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/leadmetric"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/source"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/week"
)

const apiPrefix = "/api/v1"

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
			Path:    apiPrefix + "/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Categories(service category.CategoryService) []router.Route {
	return []router.Route{
		{Path: apiPrefix + "/categories", Method: http.MethodGet, Handler: ListCategories(service)},
		{Path: apiPrefix + "/categories", Method: http.MethodPost, Handler: CreateCategory(service)},
		{Path: apiPrefix + "/categories/:id", Method: http.MethodGet, Handler: GetCategory(service)},
		{Path: apiPrefix + "/categories/:id", Method: http.MethodPut, Handler: UpdateCategory(service)},
		{Path: apiPrefix + "/categories/:id", Method: http.MethodDelete, Handler: DeleteCategory(service)},
	}
}

func Sources(service source.SourceService) []router.Route {
	return []router.Route{
		{Path: apiPrefix + "/sources", Method: http.MethodGet, Handler: ListSources(service)},
		{Path: apiPrefix + "/sources", Method: http.MethodPost, Handler: CreateSource(service)},
		{Path: apiPrefix + "/sources/:id", Method: http.MethodGet, Handler: GetSource(service)},
		{Path: apiPrefix + "/sources/:id", Method: http.MethodPut, Handler: UpdateSource(service)},
		{Path: apiPrefix + "/sources/:id", Method: http.MethodDelete, Handler: DeleteSource(service)},
	}
}

func Weeks(service week.WeekService) []router.Route {
	return []router.Route{
		{Path: apiPrefix + "/weeks", Method: http.MethodGet, Handler: ListWeeks(service)},
		{Path: apiPrefix + "/weeks", Method: http.MethodPost, Handler: CreateWeek(service)},
		{Path: apiPrefix + "/weeks/:id", Method: http.MethodGet, Handler: GetWeek(service)},
		{Path: apiPrefix + "/weeks/:id", Method: http.MethodPut, Handler: UpdateWeek(service)},
		{Path: apiPrefix + "/weeks/:id", Method: http.MethodDelete, Handler: DeleteWeek(service)},
		{Path: apiPrefix + "/weeks/:id/sources", Method: http.MethodGet, Handler: ListSourcesByWeek(service)},
		{Path: apiPrefix + "/weeks/:id/sources/:source_id/categories", Method: http.MethodGet, Handler: ListCategoriesByWeekAndSource(service)},
	}
}

func LeadMetrics(service leadmetric.LeadMetricService) []router.Route {
	return []router.Route{
		{Path: apiPrefix + "/lead_metrics", Method: http.MethodGet, Handler: ListLeadMetrics(service)},
		{Path: apiPrefix + "/lead_metrics", Method: http.MethodPost, Handler: CreateLeadMetric(service)},
		{Path: apiPrefix + "/lead_metrics/:id", Method: http.MethodGet, Handler: GetLeadMetric(service)},
		{Path: apiPrefix + "/lead_metrics/:id", Method: http.MethodPut, Handler: UpdateLeadMetric(service)},
		{Path: apiPrefix + "/lead_metrics/:id", Method: http.MethodDelete, Handler: DeleteLeadMetric(service)},
	}
}

func Dashboard(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{Path: apiPrefix + "/dashboard/lead_overview", Method: http.MethodGet, Handler: GetLeadOverview(service)},
		{Path: apiPrefix + "/dashboard/category/:id", Method: http.MethodGet, Handler: GetCategoryStats(service)},
		{Path: apiPrefix + "/dashboard/source/:id", Method: http.MethodGet, Handler: GetSourceStats(service)},
		{Path: apiPrefix + "/dashboard/lead_metrics_by_weeks", Method: http.MethodGet, Handler: GetLeadMetricsByWeeks(service)},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    apiPrefix + "/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
