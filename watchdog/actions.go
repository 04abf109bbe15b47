package watchdog

import (
	"context"
	"fmt"

	logger_wrapper "github.com/PavelAgarkov/liveness-pkg/logger"
	logger "github.com/PavelAgarkov/liveness-pkg/logger/zap_engine"
)

// StallLogAction пишет зависший компонент в лог. Обычно регистрируется
// первым, чтобы диагностика попала в лог до более жёстких действий.
func StallLogAction() Action {
	return ActionFunc(func(ctx context.Context, component Component) error {
		logger.WriteErrorLog(ctx, &logger_wrapper.LogEntry{
			Msg:       "component stalled beyond liveness timeout",
			Component: "watchdog",
			Method:    "StallLogAction",
			Args:      describe(component),
		})
		return nil
	})
}

// ShutdownAction вызывает переданную функцию остановки (обычно cancel
// корневого контекста приложения). Само убийство процесса остаётся
// на совести вызывающего кода.
func ShutdownAction(halt func()) Action {
	return ActionFunc(func(ctx context.Context, component Component) error {
		if halt == nil {
			return fmt.Errorf("shutdown action: halt func is nil")
		}
		logger.WriteWarnLog(ctx, &logger_wrapper.LogEntry{
			Msg:       "shutting down due to stalled component",
			Component: "watchdog",
			Method:    "ShutdownAction",
			Args:      describe(component),
		})
		halt()
		return nil
	})
}

func describe(component Component) string {
	type named interface{ Name() string }
	if n, ok := component.(named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", component)
}
