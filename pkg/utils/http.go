package utils

import (
	"net/http"
	"strconv"
)

// QueryInt lê um parâmetro inteiro opcional da query string
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
