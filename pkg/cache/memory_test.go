package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "rankings:all", []string{"S-NEW", "S-GOLD"}, time.Minute))

	var got []string
	found, err := c.Get(ctx, "rankings:all", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"S-NEW", "S-GOLD"}, got)

	found, err = c.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	c.now = func() time.Time { return now.Add(2 * time.Second) }

	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	_ = c.Set(ctx, "vouchers:1", 1, 0)
	_ = c.Set(ctx, "vouchers:2", 2, 0)
	_ = c.Set(ctx, "rankings:all", 3, 0)

	require.NoError(t, c.DeletePattern(ctx, "vouchers:*"))

	var v int
	found, _ := c.Get(ctx, "vouchers:1", &v)
	assert.False(t, found)
	found, _ = c.Get(ctx, "rankings:all", &v)
	assert.True(t, found)
}
