package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
)

func newTestAuthenticator(t *testing.T) *Service {
	t.Helper()

	authenticator, err := NewService(config.Auth{
		Enabled:       true,
		Secret:        "test-secret",
		AdminUsername: "admin",
		AdminPassword: "qwerty123",
		TokenTTL:      time.Hour,
	})
	require.NoError(t, err)

	return authenticator.(*Service)
}

func TestService_LoginUser(t *testing.T) {
	service := newTestAuthenticator(t)

	tests := []struct {
		name     string
		username string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Credenciais corretas",
			username: " Admin ",
			password: "qwerty123",
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
			},
		},
		{
			name:     "Senha incorreta",
			username: "admin",
			password: "wrong",
			validate: func(t *testing.T, token string, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
				assert.True(t, IsCredentialsError(err))
				assert.Empty(t, token)
			},
		},
		{
			name:     "Usuário desconhecido",
			username: "root",
			password: "qwerty123",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "Campos vazios",
			username: "",
			password: "",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.username, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestAuthenticator(t)

	t.Run("Token expirado", func(t *testing.T) {
		issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return issuedAt }
		token, err := service.LoginUser("admin", "qwerty123")
		require.NoError(t, err)

		service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))

		service.now = time.Now
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		claims := domain.Claims{
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrInvalidToken, authErr.Code)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewService_RequiresCredentials(t *testing.T) {
	_, err := NewService(config.Auth{Secret: "s"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
