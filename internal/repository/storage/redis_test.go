package storage

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		host, port, err := net.SplitHostPort(st.Addr)
		require.NoError(t, err)

		// When: a storage is opened against the test container
		redisStorage, err := NewRedisStorage(ctx, config.Redis{Host: host, Port: port})

		// Then: it should connect and close cleanly
		require.NoError(t, err)
		require.NoError(t, redisStorage.Close())
	})

	t.Run("Fails when nothing listens on the address", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// When: a storage is opened against a closed port
		redisStorage, err := NewRedisStorage(ctx, config.Redis{Host: "127.0.0.1", Port: "1"})

		// Then: an error should be returned
		require.Error(t, err)
		require.Nil(t, redisStorage)
	})

	t.Run("Fails without a host", func(t *testing.T) {
		// When: a storage is opened with an empty host
		redisStorage, err := NewRedisStorage(context.Background(), config.Redis{Port: "6379"})

		// Then: ErrHostNotSet should be returned before dialing
		require.ErrorIs(t, err, ErrHostNotSet)
		require.Nil(t, redisStorage)
	})
}
