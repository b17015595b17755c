package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
)

const (
	keyPrefix     = "lead-dashboard:reports"
	generationKey = keyPrefix + ":generation"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New cria o cache de relatórios. Sem REDIS_URL o cache fica desabilitado.
func New(ctx context.Context, cfg config.Redis) (ReportCache, error) {
	if cfg.URL == "" {
		logrus.Info("Cache de relatórios desabilitado (REDIS_URL vazio)")
		return NewNoop(), nil
	}

	options, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logrus.WithField("ttl", cfg.TTL.String()).Info("Cache de relatórios conectado ao Redis")

	return NewRedisCache(client, cfg.TTL), nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &redisCache{
		client: client,
		ttl:    ttl,
	}
}

// generation lê o contador atual. Chaves de gerações antigas expiram pelo TTL.
func (c *redisCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

func entryKey(gen int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", keyPrefix, gen, key)
}

func (c *redisCache) Fetch(ctx context.Context, key string, dest interface{}, load Loader) error {
	gen, err := c.generation(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao ler geração do cache, consultando o banco")
		return noopCache{}.Fetch(ctx, key, dest, load)
	}

	fullKey := entryKey(gen, key)

	cached, err := c.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(cached, dest); err == nil {
			return nil
		}
		logrus.WithField("key", fullKey).Warn("Entrada de cache inválida, consultando o banco")
	case err != redis.Nil:
		logrus.WithError(err).Warn("Falha ao ler do cache, consultando o banco")
	}

	value, err := load(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, fullKey, data, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Falha ao gravar no cache")
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey).Err()
}
