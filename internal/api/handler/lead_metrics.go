package handler

import (
	"net/http"

	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/leadmetric"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/utils"
)

var leadMetricErrorMessages = map[error]string{
	leadmetric.ErrLeadMetricNotFound: "Metric not found",
	leadmetric.ErrLeadMetricConflict: "Metric already exists",
	leadmetric.ErrInvalidReference:   "Category, source or week not found",
}

func ListLeadMetrics(service leadmetric.LeadMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var filters domain.LeadMetricFilters

		for name, target := range map[string]**int{
			"week_id":     &filters.WeekID,
			"category_id": &filters.CategoryID,
			"source_id":   &filters.SourceID,
		} {
			value, err := utils.QueryInt(r, name)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid query parameter", name)
				return
			}
			*target = value
		}

		metrics, err := service.ListLeadMetrics(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, leadMetricErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, metrics, "List all lead metrics")
	})
}

func GetLeadMetric(service leadmetric.LeadMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		metric, err := service.GetLeadMetric(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, leadMetricErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, metric, "Metric found")
	})
}

func CreateLeadMetric(service leadmetric.LeadMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.LeadMetricRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		metric, isNew, err := service.CreateLeadMetric(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, leadMetricErrorMessages)
			return
		}

		message := "Metric already exists"
		if isNew {
			message = "Metric created"
		}

		writeResponse(w, createdStatus(isNew), metric, message)
	})
}

func UpdateLeadMetric(service leadmetric.LeadMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.LeadMetricRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		metric, err := service.UpdateLeadMetric(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, leadMetricErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, metric, "Metric updated")
	})
}

func DeleteLeadMetric(service leadmetric.LeadMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteLeadMetric(r.Context(), id); err != nil {
			writeServiceError(w, r, err, leadMetricErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, nil, "Metric deleted")
	})
}
