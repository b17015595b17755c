package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrMissingToken       = "AUTH_011" // Cabeçalho Authorization ausente

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidReference    = "VAL_004" // Referência para registro inexistente

	// Erros de recurso
	ErrResourceNotFound = "RES_001" // Registro não encontrado
	ErrResourceConflict = "RES_002" // Conflito com registro existente

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrMissingToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidReference:    http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrResourceConflict:    http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError é o conteúdo do campo errors no envelope de resposta
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

type errorEnvelope struct {
	Status  string   `json:"status"`
	Data    any      `json:"data"`
	Message string   `json:"message"`
	Errors  APIError `json:"errors"`
}

// StatusFor retorna o status HTTP associado ao código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o envelope de erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	envelope := errorEnvelope{
		Status:  "error",
		Data:    nil,
		Message: message,
		Errors: APIError{
			Code:    code,
			Details: details,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever resposta de erro")
	}
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{Code: ErrInternalServer}
	}

	return APIError{
		Code:    code,
		Details: err.Error(),
	}
}
