package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisValidatesAddress(t *testing.T) {
	_, err := NewRedis(Options{Port: 6379})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = NewRedis(Options{Host: "localhost", Port: 70000})
	assert.ErrorIs(t, err, ErrInvalidPort)

	c, err := NewRedis(Options{Host: "localhost", Port: 6379})
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}

func TestEmptyTokenRejectedBeforeNetwork(t *testing.T) {
	c, err := NewRedis(Options{Host: "localhost", Port: 6379})
	require.NoError(t, err)
	defer c.Close()

	ok, err := c.SetNX(context.Background(), "k", "", time.Second)
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.False(t, ok)

	ok, err = c.CompareAndDelete(context.Background(), "k", "")
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.False(t, ok)
}
