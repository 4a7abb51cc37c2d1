package db

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-hub/backend/config"
)

func TestNewRedisConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	conn, err := NewRedisConnection(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)

	assert.True(t, conn.HealthCheck())

	mr.Close()
	assert.False(t, conn.HealthCheck())
	assert.NoError(t, conn.Close())
}

func TestNewRedisConnection_InvalidURL(t *testing.T) {
	_, err := NewRedisConnection(&config.RedisConfig{URL: "http://not-redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse redis url")
}
