package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour/internal/config"
)

const dialTimeout = 5 * time.Second

var ErrHostNotSet = errors.New("redis host is empty")

// RedisStorage - client for the redis instance holding board snapshots.
type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage - opens a client for conf and pings it before returning.
func NewRedisStorage(ctx context.Context, conf config.Redis) (*RedisStorage, error) {
	if conf.Host == "" {
		return nil, ErrHostNotSet
	}

	client := redis.NewClient(&redis.Options{
		Addr:        conf.GetRedisAddr(),
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: dialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", conf.GetRedisAddr(), err)
	}

	return &RedisStorage{Connection: client}, nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
