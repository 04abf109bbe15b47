package watchdog

import "sync"

// componentSet -- множество компонентов под наблюдением. Мутируется
// произвольными горутинами (регистрация/снятие), читается одним фоновым
// сканом. Обход идёт по мгновенному срезу под коротким RLock, так что
// конкурентные Add/Remove никогда не ломают скан.
type componentSet struct {
	mu      sync.RWMutex
	members map[Component]struct{}
}

func newComponentSet() *componentSet {
	return &componentSet{
		members: make(map[Component]struct{}),
	}
}

func (s *componentSet) Add(component Component) {
	if component == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[component] = struct{}{}
}

func (s *componentSet) Remove(component Component) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.members, component)
}

func (s *componentSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

func (s *componentSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = make(map[Component]struct{})
}

// ForEach вызывает visit для каждого участника среза; visit возвращает
// false, чтобы прервать обход раньше.
func (s *componentSet) ForEach(visit func(component Component) bool) {
	s.mu.RLock()
	snapshot := make([]Component, 0, len(s.members))
	for component := range s.members {
		snapshot = append(snapshot, component)
	}
	s.mu.RUnlock()

	for _, component := range snapshot {
		if !visit(component) {
			return
		}
	}
}
