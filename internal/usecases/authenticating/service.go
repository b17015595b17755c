package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator autentica o administrador único do dashboard
type Authenticator interface {
	LoginUser(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	username     string
	passwordHash []byte
	secretKey    []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

// NewService gera o hash da senha do administrador uma única vez, na inicialização
func NewService(cfg config.Auth) (Authenticator, error) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ADMIN_USERNAME e ADMIN_PASSWORD são obrigatórios")
	}

	if cfg.Secret == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "AUTH_SECRET é obrigatório")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &Service{
		username:     handleUsername(cfg.AdminUsername),
		passwordHash: hashedPassword,
		secretKey:    []byte(cfg.Secret),
		tokenTTL:     tokenTTL,
		now:          time.Now,
	}, nil
}

func handleUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) LoginUser(username, password string) (string, error) {
	// Validação de entrada
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	username = handleUsername(username)

	// Usuário e senha são sempre verificados juntos
	sameUser := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !sameUser || passwordErr != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "Usuário ou senha incorretos")
	}

	token, err := s.generateJWT(username)
	if err != nil {
		return "", NewAuthError(ErrIssueToken, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(username string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
