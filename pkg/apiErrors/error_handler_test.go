package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		details    any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Registro não encontrado",
			code:       ErrResourceNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"error","data":null,"message":"msg","errors":{"code":"RES_001"}}`,
		},
		{
			name:       "Conflito com detalhes",
			code:       ErrResourceConflict,
			details:    map[string]any{"id": 1},
			wantStatus: http.StatusConflict,
			wantBody:   `{"status":"error","data":null,"message":"msg","errors":{"code":"RES_002","details":{"id":1}}}`,
		},
		{
			name:       "Código desconhecido vira 500",
			code:       "XXX_999",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"error","data":null,"message":"msg","errors":{"code":"XXX_999"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "msg", tt.details)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer}, FromError(nil, ErrDatabaseOperation))
	assert.Equal(t, APIError{Code: ErrDatabaseOperation, Details: "boom"}, FromError(errors.New("boom"), ErrDatabaseOperation))
}
