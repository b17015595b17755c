package domain

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Response é o envelope usado por todas as respostas da API v1
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}
