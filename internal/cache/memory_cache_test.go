package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.SetJSON(ctx, KeyInternships, []string{"a", "b"}, time.Minute))

	var got []string
	hit, err := c.GetJSON(ctx, KeyInternships, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, got)

	now = now.Add(time.Minute)
	hit, err = c.GetJSON(ctx, KeyInternships, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetJSON(ctx, KeyProjects, 1, 0))
	require.NoError(t, c.Del(ctx, KeyProjects))
	var n int
	hit, _ = c.GetJSON(ctx, KeyProjects, &n)
	assert.False(t, hit)
}
