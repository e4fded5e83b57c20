package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"gold-ledger/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func miniredisConfig(t *testing.T, s *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return config.RedisConfig{Host: s.Host(), Port: port, PoolSize: 2, DialTimeout: time.Second}
}

func TestRedisAddr(t *testing.T) {
	cfg := config.RedisConfig{Host: "redis.example.com", Port: 6380}
	assert.Equal(t, "redis.example.com:6380", cfg.Addr())
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "gold:ping", "1", 0).Err())
	assert.True(t, s.Exists("gold:ping"))
}

func TestNewClient_UnreachableServer(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := miniredisConfig(t, s)
	s.Close()

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging redis at "+cfg.Addr())
}
