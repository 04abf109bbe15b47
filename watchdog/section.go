package watchdog

import (
	"sync/atomic"
	"time"
)

// SectionGuard -- реализация Component для критических участков кода:
// Enter/Leave обрамляют участок, и компонент считается зависшим только
// пока сидит внутри дольше таймаута. Вне участка он жив всегда,
// сколько бы времени ни прошло.
type SectionGuard struct {
	name      string
	inSection atomic.Bool
	enteredAt atomic.Int64 // unix-наносекунды входа
}

func NewSectionGuard(name string) *SectionGuard {
	return &SectionGuard{name: name}
}

func (g *SectionGuard) Name() string {
	return g.name
}

func (g *SectionGuard) Enter() {
	g.enteredAt.Store(time.Now().UnixNano())
	g.inSection.Store(true)
}

func (g *SectionGuard) Leave() {
	g.inSection.Store(false)
}

func (g *SectionGuard) IsExpired(timeout time.Duration) bool {
	if !g.inSection.Load() {
		return false
	}
	entered := time.Unix(0, g.enteredAt.Load())
	return time.Since(entered) > timeout
}
