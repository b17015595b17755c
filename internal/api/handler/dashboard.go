package handler

import (
	"net/http"

	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
)

var reportingErrorMessages = map[error]string{
	reporting.ErrCategoryNotFound: "Category not found",
	reporting.ErrSourceNotFound:   "Source not found",
}

func GetLeadOverview(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.LeadOverview(r.Context())
		if err != nil {
			writeServiceError(w, r, err, reportingErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, overview, "Lead overview summary")
	})
}

func GetCategoryStats(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categoryID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		filters, ok := statsFilters(w, r)
		if !ok {
			return
		}

		stats, err := service.CategoryStats(r.Context(), categoryID, filters)
		if err != nil {
			writeServiceError(w, r, err, reportingErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, stats, "Category stats calculated")
	})
}

func GetSourceStats(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sourceID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		filters, ok := statsFilters(w, r)
		if !ok {
			return
		}

		stats, err := service.SourceStats(r.Context(), sourceID, filters)
		if err != nil {
			writeServiceError(w, r, err, reportingErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, stats, "Source stats calculated")
	})
}

func GetLeadMetricsByWeeks(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groups, err := service.LeadMetricsByWeeks(r.Context())
		if err != nil {
			writeServiceError(w, r, err, reportingErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, groups, "Metrics by week successfully fetched")
	})
}

// statsFilters lê from_date e to_date (YYYY-MM-DD) da query string
func statsFilters(w http.ResponseWriter, r *http.Request) (domain.StatsFilters, bool) {
	query := r.URL.Query()

	fromDate, err := domain.ParseOptionalDate(query.Get("from_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date format, expected YYYY-MM-DD", "from_date")
		return domain.StatsFilters{}, false
	}

	toDate, err := domain.ParseOptionalDate(query.Get("to_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date format, expected YYYY-MM-DD", "to_date")
		return domain.StatsFilters{}, false
	}

	return domain.StatsFilters{FromDate: fromDate, ToDate: toDate}, true
}
