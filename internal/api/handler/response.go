package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Erros de validação usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// codedError é implementado pelos erros tipados dos casos de uso
type codedError interface {
	error
	ErrorCode() string
	ErrorDetails() string
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func writeResponse(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(domain.Response{
		Status:  domain.StatusOK,
		Data:    data,
		Message: message,
	})
	if err != nil {
		log.L.WithError(err).Warn("Erro ao codificar resposta")
	}
}

// createdStatus devolve 201 para registros novos e 200 quando o registro já existia.
// Vale para todos os POST de get-or-create (categorias, fontes, semanas e métricas).
func createdStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// decodeRequest lê o corpo JSON e aplica as regras de validação.
// Em caso de falha a resposta de erro já foi escrita.
func decodeRequest(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		apiErr := apiErrors.FromError(err, apiErrors.ErrInvalidRequest)
		apiErrors.WriteError(w, apiErr.Code, "Invalid request body", apiErr.Details)
		return false
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return false
		}

		details := make([]fieldError, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, fieldError{
				Field: fieldErr.Field(),
				Rule:  fieldErr.Tag(),
				Param: fieldErr.Param(),
			})
		}

		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Validation failed", details)
		return false
	}

	return true
}

// pathID lê um parâmetro inteiro da rota
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing path parameter", name)
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid path parameter", name)
		return 0, false
	}

	return id, true
}

// writeServiceError traduz o erro do caso de uso no envelope de erro.
// messages associa erros sentinela à mensagem enviada ao cliente.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, messages map[error]string) {
	var coded codedError
	if !errors.As(err, &coded) {
		log.ForContext(r.Context()).WithError(err).Error("Erro não tipado retornado pelo serviço")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
		return
	}

	var details any
	if coded.ErrorDetails() != "" {
		details = coded.ErrorDetails()
	}

	for sentinel, message := range messages {
		if errors.Is(err, sentinel) {
			apiErrors.WriteError(w, coded.ErrorCode(), message, details)
			return
		}
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro ao processar requisição")
	apiErrors.WriteError(w, coded.ErrorCode(), "Internal server error", nil)
}
