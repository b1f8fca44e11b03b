package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/internal/config"
)

type redisCache struct {
	client *redis.Client
}

// NewRedisCache conecta ao Redis e devolve o cache best-effort. Se o
// endereço não estiver configurado ou o ping falhar, devolve o cache
// nulo - a aplicação segue funcionando sem cache.
func NewRedisCache(ctx context.Context, cfg config.Redis) Cache {
	if cfg.Addr == "" {
		logrus.Warn("Endereço do Redis não configurado, cache desabilitado")
		return NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Não foi possível conectar ao Redis, cache desabilitado")
		return NewNoopCache()
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", key).Warn("Erro ao ler do cache")
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao deserializar valor do cache")
		return false
	}

	return true
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao serializar valor para o cache")
		return
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao gravar no cache")
	}
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logrus.WithError(err).WithField("keys", keys).Warn("Erro ao invalidar chaves do cache")
	}
}

func (c *redisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		logrus.WithError(err).WithField("prefix", prefix).Warn("Erro ao varrer chaves do cache")
		return
	}

	if len(keys) > 0 {
		c.Delete(ctx, keys...)
	}
}
