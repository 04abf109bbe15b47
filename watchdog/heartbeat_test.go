package watchdog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatComponentExpiry(t *testing.T) {
	h := NewHeartbeatComponent("downloader")
	assert.False(t, h.IsExpired(50*time.Millisecond))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, h.IsExpired(50*time.Millisecond))

	h.Beat()
	assert.False(t, h.IsExpired(50*time.Millisecond))
}

func TestHeartbeatComponentIdentity(t *testing.T) {
	a := NewHeartbeatComponent("a")
	b := NewHeartbeatComponent("b")

	require.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "a", a.Name())
}
