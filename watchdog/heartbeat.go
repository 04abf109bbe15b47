package watchdog

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// HeartbeatComponent -- готовая реализация Component для воркеров,
// которые подтверждают прогресс периодическим Beat. Молчание дольше
// таймаута считается зависанием.
type HeartbeatComponent struct {
	id       string
	name     string
	lastBeat atomic.Int64 // unix-наносекунды последнего Beat
}

func NewHeartbeatComponent(name string) *HeartbeatComponent {
	h := &HeartbeatComponent{
		id:   uuid.NewString(),
		name: name,
	}
	h.Beat()
	return h
}

func (h *HeartbeatComponent) ID() string {
	return h.id
}

func (h *HeartbeatComponent) Name() string {
	return h.name
}

func (h *HeartbeatComponent) Beat() {
	h.lastBeat.Store(time.Now().UnixNano())
}

func (h *HeartbeatComponent) LastBeat() time.Time {
	return time.Unix(0, h.lastBeat.Load())
}

func (h *HeartbeatComponent) IsExpired(timeout time.Duration) bool {
	return time.Since(h.LastBeat()) > timeout
}
