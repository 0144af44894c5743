package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/idrissziadi/stage-sub004/config"
)

// Client enveloppe du client Redis.
// Utilisé pour la liste noire de tokens (déconnexion).
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient ouvre la connexion Redis et vérifie avec un Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis: %w", err)
	}

	logger.Info("connexion Redis établie", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Liste noire de tokens ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken place un JWT ID en liste noire, TTL égal à la validité restante du token
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token déjà expiré
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted vérifie si un JWT ID est en liste noire
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close ferme la connexion Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
