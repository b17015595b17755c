package handler

import (
	"net/http"

	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/category"
)

var categoryErrorMessages = map[error]string{
	category.ErrCategoryNotFound: "Category not found",
	category.ErrCategoryConflict: "Category already exists",
}

func ListCategories(service category.CategoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories(r.Context())
		if err != nil {
			writeServiceError(w, r, err, categoryErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, categories, "List all categories")
	})
}

func GetCategory(service category.CategoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		found, err := service.GetCategory(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, categoryErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, found, "Category found")
	})
}

func CreateCategory(service category.CategoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CategoryRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		created, isNew, err := service.CreateCategory(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, categoryErrorMessages)
			return
		}

		message := "Category already exists"
		if isNew {
			message = "Category created"
		}

		writeResponse(w, createdStatus(isNew), created, message)
	})
}

func UpdateCategory(service category.CategoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.CategoryRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		updated, err := service.UpdateCategory(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, categoryErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, updated, "Category updated")
	})
}

func DeleteCategory(service category.CategoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteCategory(r.Context(), id); err != nil {
			writeServiceError(w, r, err, categoryErrorMessages)
			return
		}

		writeResponse(w, http.StatusOK, nil, "Category deleted")
	})
}
