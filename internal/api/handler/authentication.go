package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		token, err := service.LoginUser(req.Username, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeResponse(w, http.StatusOK, domain.LoginResponse{Token: token}, "Login successful")
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) {
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, authErr.Code, "Username and password are required", nil)

	case errors.Is(err, authenticating.ErrInvalidCredentials):
		log.ForContext(r.Context()).WithField("admin_username", authErr.Username).Warn("Tentativa de login com credenciais inválidas")
		apiErrors.WriteError(w, authErr.Code, "Invalid credentials", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao realizar login")
		apiErrors.WriteError(w, authErr.Code, "Internal server error", nil)
	}
}
