package handler

import (
	"net/http"

	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/source"
)

var sourceErrorMessages = map[error]string{
	source.ErrSourceNotFound:     "Source not found",
	source.ErrSourceConflict:     "Source already exists",
	source.ErrInvalidPricingType: "Invalid pricing type",
}

func ListSources(service source.SourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sources, err := service.ListSources(r.Context())
		if err != nil {
			writeServiceError(w, r, err, sourceErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, sources, "List all sources")
	})
}

func GetSource(service source.SourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		found, err := service.GetSource(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, sourceErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, found, "Source found")
	})
}

func CreateSource(service source.SourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.SourceRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		created, isNew, err := service.CreateSource(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, sourceErrorMessages)
			return
		}

		message := "Source already exists"
		if isNew {
			message = "Source created"
		}

		writeResponse(w, createdStatus(isNew), created, message)
	})
}

func UpdateSource(service source.SourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.SourceRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		updated, err := service.UpdateSource(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, sourceErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, updated, "Source updated")
	})
}

func DeleteSource(service source.SourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteSource(r.Context(), id); err != nil {
			writeServiceError(w, r, err, sourceErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, nil, "Source deleted")
	})
}
