package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/models"
	"github.com/Nascian/socialnetwork-backend/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ProfileCache is a read-through cache of user profiles. Users are never
// modified after creation, so entries only expire. A nil redis client turns
// every call into a miss.
type ProfileCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProfileCache(rdb *redis.Client, conf *config.Config) *ProfileCache {
	return &ProfileCache{redis: rdb, ttl: conf.Redis.TTL()}
}

func (c *ProfileCache) key(userID uint64) string {
	return fmt.Sprintf("profile:%d", userID)
}

func (c *ProfileCache) Get(ctx context.Context, userID uint64) (*models.User, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.L.Warn("profile cache get", zap.Uint64("user_id", userID), zap.Error(err))
		}
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, false
	}
	return &u, true
}

func (c *ProfileCache) Set(ctx context.Context, u *models.User) {
	if c == nil || c.redis == nil || u == nil {
		return
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, c.key(u.ID), raw, c.ttl).Err(); err != nil {
		log.L.Warn("profile cache set", zap.Uint64("user_id", u.ID), zap.Error(err))
	}
}
