package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (ReportCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, time.Minute), mr
}

func countingLoader(calls *int, total int) Loader {
	return func(context.Context) (interface{}, error) {
		*calls++
		return &report{Total: total}, nil
	}
}

func TestRedisCache_Fetch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(t *testing.T, c ReportCache, mr *miniredis.Miniredis)
		loader   func(calls *int) Loader
		validate func(t *testing.T, err error, got report, calls int)
	}{
		{
			name: "Segunda leitura usa o valor em cache",
			setup: func(t *testing.T, c ReportCache, mr *miniredis.Miniredis) {
				var warm report
				calls := 0
				require.NoError(t, c.Fetch(ctx, "k", &warm, countingLoader(&calls, 7)))
				require.Equal(t, 1, calls)
				assert.True(t, mr.Exists(entryKey(0, "k")))
			},
			loader: func(calls *int) Loader { return countingLoader(calls, 99) },
			validate: func(t *testing.T, err error, got report, calls int) {
				require.NoError(t, err)
				assert.Equal(t, 7, got.Total)
				assert.Equal(t, 0, calls)
			},
		},
		{
			name: "Invalidate troca a geração e força nova consulta",
			setup: func(t *testing.T, c ReportCache, mr *miniredis.Miniredis) {
				var warm report
				calls := 0
				require.NoError(t, c.Fetch(ctx, "k", &warm, countingLoader(&calls, 7)))
				require.NoError(t, c.Invalidate(ctx))

				gen, err := mr.Get(generationKey)
				require.NoError(t, err)
				assert.Equal(t, "1", gen)
			},
			loader: func(calls *int) Loader { return countingLoader(calls, 99) },
			validate: func(t *testing.T, err error, got report, calls int) {
				require.NoError(t, err)
				assert.Equal(t, 99, got.Total)
				assert.Equal(t, 1, calls)
			},
		},
		{
			name: "Entrada corrompida consulta o loader e regrava",
			setup: func(t *testing.T, c ReportCache, mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set(entryKey(0, "k"), "{nao-e-json"))
			},
			loader: func(calls *int) Loader { return countingLoader(calls, 5) },
			validate: func(t *testing.T, err error, got report, calls int) {
				require.NoError(t, err)
				assert.Equal(t, 5, got.Total)
				assert.Equal(t, 1, calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mr := newTestRedisCache(t)
			tt.setup(t, c, mr)

			var got report
			calls := 0
			err := c.Fetch(ctx, "k", &got, tt.loader(&calls))

			tt.validate(t, err, got, calls)
		})
	}
}

func TestRedisCache_FetchNaoGuardaErroDoLoader(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	loadErr := errors.New("db down")
	calls := 0
	failing := func(context.Context) (interface{}, error) {
		calls++
		return nil, loadErr
	}

	var dest report
	err := c.Fetch(ctx, "k", &dest, failing)
	assert.ErrorIs(t, err, loadErr)
	assert.False(t, mr.Exists(entryKey(0, "k")))

	err = c.Fetch(ctx, "k", &dest, failing)
	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, 2, calls)
}

func TestRedisCache_EntradaCorrompidaERegravada(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)
	require.NoError(t, mr.Set(entryKey(0, "k"), "{nao-e-json"))

	calls := 0
	var first, second report
	require.NoError(t, c.Fetch(ctx, "k", &first, countingLoader(&calls, 3)))
	require.NoError(t, c.Fetch(ctx, "k", &second, countingLoader(&calls, 4)))

	assert.Equal(t, 3, second.Total)
	assert.Equal(t, 1, calls)
}
