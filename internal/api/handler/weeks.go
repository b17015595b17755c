package handler

import (
	"net/http"

	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/week"
)

var weekErrorMessages = map[error]string{
	week.ErrWeekNotFound: "Week not found",
}

func ListWeeks(service week.WeekService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weeks, err := service.ListWeeks(r.Context())
		if err != nil {
			writeServiceError(w, r, err, weekErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, weeks, "List all weeks")
	})
}

func GetWeek(service week.WeekService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		found, err := service.GetWeek(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, weekErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, found, "Week found")
	})
}

func CreateWeek(service week.WeekService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.WeekRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		created, isNew, err := service.CreateWeek(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, weekErrorMessages)
			return
		}

		message := "Week already exists"
		if isNew {
			message = "Week created"
		}

		writeResponse(w, createdStatus(isNew), created, message)
	})
}

func UpdateWeek(service week.WeekService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.WeekRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		updated, err := service.UpdateWeek(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, weekErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, updated, "week updated")
	})
}

func DeleteWeek(service week.WeekService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteWeek(r.Context(), id); err != nil {
			writeServiceError(w, r, err, weekErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, nil, "Week deleted")
	})
}

func ListSourcesByWeek(service week.WeekService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weekID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		sources, err := service.ListSourcesByWeek(r.Context(), weekID)
		if err != nil {
			writeServiceError(w, r, err, weekErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, sources, "")
	})
}

func ListCategoriesByWeekAndSource(service week.WeekService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weekID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		sourceID, ok := pathID(w, r, "source_id")
		if !ok {
			return
		}

		categories, err := service.ListCategoriesByWeekAndSource(r.Context(), weekID, sourceID)
		if err != nil {
			writeServiceError(w, r, err, weekErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, categories, "")
	})
}
