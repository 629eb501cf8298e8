package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"distribution_manager/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

type SessionData struct {
	UserID    uint                   `json:"user_id"`
	Username  string                 `json:"username"`
	Role      string                 `json:"role"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management
func (c *Client) SetSession(sessionID string, data *SessionData, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetSession(sessionID string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+sessionID).Err()
}

// Product catalog cache. Lookups read through this cache; any product write
// must invalidate the key to keep the catalog fresh.
func (c *Client) SetProduct(product *models.Product, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	key := fmt.Sprintf("product:%d", product.ID)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetProduct(productID uint) (*models.Product, error) {
	ctx := context.Background()
	key := fmt.Sprintf("product:%d", productID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("product not cached")
		}
		return nil, fmt.Errorf("failed to get cached product: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached product: %w", err)
	}

	return &product, nil
}

func (c *Client) InvalidateProduct(productID uint) error {
	ctx := context.Background()
	key := fmt.Sprintf("product:%d", productID)
	return c.rdb.Del(ctx, key).Err()
}

// Temporary data management
func (c *Client) SetTempData(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal temp data: %w", err)
	}

	return c.rdb.Set(ctx, "temp:"+key, jsonData, ttl).Err()
}

func (c *Client) GetTempData(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "temp:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("temp data not found")
		}
		return fmt.Errorf("failed to get temp data: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) DeleteTempData(key string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "temp:"+key).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
