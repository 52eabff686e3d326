package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/commercekit/backoffice/internal/repository"
)

const nameKeyPrefix = "product:name:"

// ProductNameCache is a read-through cache over a ProductReader. GetName
// results are cached in Redis; Exists always hits the underlying reader
// because create guards must see the live catalog.
type ProductNameCache struct {
	inner  repository.ProductReader
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewProductNameCache creates a caching decorator around the given reader.
func NewProductNameCache(inner repository.ProductReader, client *redis.Client, ttl time.Duration, logger *slog.Logger) *ProductNameCache {
	return &ProductNameCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Exists reports whether an active product with the given ID exists.
func (c *ProductNameCache) Exists(ctx context.Context, productID string) (bool, error) {
	return c.inner.Exists(ctx, productID)
}

// GetName returns the product name, serving from Redis when possible.
// Cache failures degrade to the underlying reader.
func (c *ProductNameCache) GetName(ctx context.Context, productID string) (string, error) {
	key := nameKeyPrefix + productID

	name, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "product name cache read failed",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	name, err = c.inner.GetName(ctx, productID)
	if err != nil {
		return "", fmt.Errorf("get product name: %w", err)
	}

	if err := c.client.Set(ctx, key, name, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "product name cache write failed",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	return name, nil
}

// Invalidate drops the cached name for a product, typically after a rename.
func (c *ProductNameCache) Invalidate(ctx context.Context, productID string) error {
	if err := c.client.Del(ctx, nameKeyPrefix+productID).Err(); err != nil {
		return fmt.Errorf("invalidate product name: %w", err)
	}
	return nil
}
