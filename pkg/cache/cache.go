package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

// operationContext creates a context with timeout for Redis operations
func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.enabled {
		return fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("key not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(key string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}

// CachePage caches a page document keyed by its public slug.
func (c *Cache) CachePage(slug string, page interface{}) error {
	return c.Set(fmt.Sprintf("page:slug:%s", slug), page, 1*time.Hour)
}

func (c *Cache) GetCachedPage(slug string, dest interface{}) error {
	return c.Get(fmt.Sprintf("page:slug:%s", slug), dest)
}

// CacheRenderedPage stores published-mode HTML for the public site route.
func (c *Cache) CacheRenderedPage(slug, html string) error {
	return c.Set(fmt.Sprintf("page:html:%s", slug), html, 1*time.Hour)
}

func (c *Cache) GetRenderedPage(slug string) (string, error) {
	var html string
	if err := c.Get(fmt.Sprintf("page:html:%s", slug), &html); err != nil {
		return "", err
	}
	return html, nil
}

// InvalidatePage drops both the document and the rendered HTML for a slug.
// Called on every save and publish so stale drafts never leak to the public
// route.
func (c *Cache) InvalidatePage(slug string) error {
	if err := c.Delete(fmt.Sprintf("page:slug:%s", slug)); err != nil {
		return err
	}
	return c.Delete(fmt.Sprintf("page:html:%s", slug))
}

func (c *Cache) InvalidatePagesCache() error {
	return c.DeletePattern("page:*")
}

func (c *Cache) CacheCatalog(companyID uint, items interface{}) error {
	return c.Set(fmt.Sprintf("catalog:%d", companyID), items, 5*time.Minute)
}

func (c *Cache) GetCachedCatalog(companyID uint, dest interface{}) error {
	return c.Get(fmt.Sprintf("catalog:%d", companyID), dest)
}

func (c *Cache) InvalidateCatalog(companyID uint) error {
	return c.Delete(fmt.Sprintf("catalog:%d", companyID))
}
