// Package cache implementa la cache de lectura de categorías sobre Redis.
// Es estrictamente opcional: cualquier error de Redis se registra y se sigue
// contra la base de datos, nunca se propaga al caller.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/ElectroStock-api/internal/application/usecase"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

const (
	categoryListKey = "catalog:categories"
	categoryListTTL = 5 * time.Minute
)

var _ usecase.CategoryListCache = (*CategoryCache)(nil)

// Connect crea el cliente Redis y verifica la conexión con un ping.
func Connect(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// CategoryCache guarda el listado plano de categorías serializado en JSON
// bajo una sola clave con TTL. Toda escritura de categorías la invalida.
type CategoryCache struct {
	client *redis.Client
}

// NewCategoryCache construye la cache sobre un cliente ya conectado.
func NewCategoryCache(client *redis.Client) *CategoryCache {
	return &CategoryCache{client: client}
}

// GetList devuelve el listado cacheado si existe y deserializa bien.
func (c *CategoryCache) GetList(ctx context.Context) ([]*entity.Category, bool) {
	data, err := c.client.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("cache de categorías: lectura fallida")
		}
		return nil, false
	}
	var categories []*entity.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		log.Warn().Err(err).Msg("cache de categorías: payload corrupto, se descarta")
		c.Invalidate(ctx)
		return nil, false
	}
	return categories, true
}

// SetList serializa y guarda el listado con TTL.
func (c *CategoryCache) SetList(ctx context.Context, categories []*entity.Category) {
	data, err := json.Marshal(categories)
	if err != nil {
		log.Warn().Err(err).Msg("cache de categorías: serialización fallida")
		return
	}
	if err := c.client.Set(ctx, categoryListKey, data, categoryListTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("cache de categorías: escritura fallida")
	}
}

// Invalidate borra la clave.
func (c *CategoryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, categoryListKey).Err(); err != nil {
		log.Warn().Err(err).Msg("cache de categorías: invalidación fallida")
	}
}
