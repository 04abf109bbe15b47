package watchdog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSectionGuardNeverExpiredOutsideSection(t *testing.T) {
	g := NewSectionGuard("journal")
	assert.False(t, g.IsExpired(time.Nanosecond))

	g.Enter()
	g.Leave()
	time.Sleep(10 * time.Millisecond)
	assert.False(t, g.IsExpired(time.Nanosecond))
}

func TestSectionGuardExpiresWhileStuckInside(t *testing.T) {
	g := NewSectionGuard("journal")

	g.Enter()
	assert.False(t, g.IsExpired(time.Second))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, g.IsExpired(10*time.Millisecond))

	g.Leave()
	assert.False(t, g.IsExpired(10*time.Millisecond))
}
