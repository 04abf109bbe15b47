package watchdog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownActionCallsHalt(t *testing.T) {
	halted := false
	action := ShutdownAction(func() { halted = true })

	err := action.Run(context.Background(), NewHeartbeatComponent("worker"))
	require.NoError(t, err)
	assert.True(t, halted)
}

func TestShutdownActionNilHalt(t *testing.T) {
	err := ShutdownAction(nil).Run(context.Background(), NewHeartbeatComponent("worker"))
	assert.Error(t, err)
}

func TestStallLogActionNeverFails(t *testing.T) {
	err := StallLogAction().Run(context.Background(), NewHeartbeatComponent("worker"))
	assert.NoError(t, err)
}

func TestDescribePrefersName(t *testing.T) {
	assert.Equal(t, "worker", describe(NewHeartbeatComponent("worker")))
	assert.Equal(t, "*watchdog.stubComponent", describe(&stubComponent{}))
}
