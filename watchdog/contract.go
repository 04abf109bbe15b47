package watchdog

import (
	"context"
	"time"
)

// Component -- внешний компонент, за живостью которого следит watchdog.
// Сам компонент решает, что значит "завис": watchdog только спрашивает.
// Регистрация идёт по идентичности, поэтому на практике это указатели.
type Component interface {
	IsExpired(timeout time.Duration) bool
}

// Action -- разовая реакция на зависший компонент (дамп диагностики,
// остановка приложения и т.п.). Ошибка логируется механизмом запуска
// и дальше не распространяется.
type Action interface {
	Run(ctx context.Context, component Component) error
}

type ActionFunc func(ctx context.Context, component Component) error

func (f ActionFunc) Run(ctx context.Context, component Component) error {
	return f(ctx, component)
}

type Watchdog interface {
	AddComponent(component Component)
	RemoveComponent(component Component)
	ComponentCount() int
	AddAction(action Action) Watchdog
	SetTimeout(timeout time.Duration) Watchdog
	GetTimeout() time.Duration
	SetCheckInterval(interval time.Duration) Watchdog
	GetCheckInterval() time.Duration
	IsMeasuring() bool
	Check(ctx context.Context)
	Start()
	Stop()
	IsStarted() bool
	Clear()
}
