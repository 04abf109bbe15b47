package watchdog

import "sync"

// actionList -- упорядоченный copy-on-write список действий. Snapshot
// отдаёт неизменяемый срез, поэтому Append/Clear во время обхода
// снимка ничего не ломают.
type actionList struct {
	mu      sync.Mutex
	actions []Action
}

func newActionList() *actionList {
	return &actionList{}
}

func (l *actionList) Append(action Action) {
	if action == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]Action, len(l.actions), len(l.actions)+1)
	copy(next, l.actions)
	l.actions = append(next, action)
}

func (l *actionList) Snapshot() []Action {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.actions
}

func (l *actionList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.actions = nil
}

func (l *actionList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.actions)
}
