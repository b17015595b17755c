package cache

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Loader produz o valor quando ele não está no cache
type Loader func(ctx context.Context) (interface{}, error)

// ReportCache guarda respostas dos relatórios até a próxima escrita
type ReportCache interface {
	// Fetch preenche dest com o valor em cache ou com o resultado de load.
	// Erros de load são devolvidos sem alteração e nunca ficam em cache.
	Fetch(ctx context.Context, key string, dest interface{}, load Loader) error
	// Invalidate descarta tudo que foi gravado até agora
	Invalidate(ctx context.Context) error
}

// InvalidateReports descarta os relatórios após uma escrita. Falhas geram apenas aviso.
func InvalidateReports(ctx context.Context, c ReportCache) {
	if err := c.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("Falha ao invalidar cache de relatórios")
	}
}

type noopCache struct{}

// NewNoop retorna um cache que sempre executa o loader
func NewNoop() ReportCache {
	return noopCache{}
}

func (noopCache) Fetch(ctx context.Context, _ string, dest interface{}, load Loader) error {
	value, err := load(ctx)
	if err != nil {
		return err
	}

	return copyInto(value, dest)
}

func (noopCache) Invalidate(context.Context) error {
	return nil
}

func copyInto(value interface{}, dest interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}
