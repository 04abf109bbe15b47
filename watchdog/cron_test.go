package watchdog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCheckCronDrivesForcedChecks(t *testing.T) {
	wd := newWatchdog(Config{Timeout: time.Millisecond})

	comp := &stubComponent{}
	comp.expired.Store(true)
	wd.AddComponent(comp)

	rec := &actionRecorder{}
	wd.AddAction(&recordingAction{rec: rec, label: "a"})

	cc := NewCheckCron(wd)
	cc.Add(context.Background(), "* * * * * *")
	cc.Start()
	defer cc.Stop()

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestCheckCronPanicsOnBadCalendar(t *testing.T) {
	cc := NewCheckCron(newWatchdog(Config{}))
	require.Panics(t, func() {
		cc.Add(context.Background(), "not a calendar")
	})
}
