package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	runIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDSize     = 6
)

// NewRunID gera o identificador curto de uma execução de cron, usado em logs e no status
func NewRunID() (string, error) {
	return gonanoid.Generate(runIDAlphabet, runIDSize)
}
