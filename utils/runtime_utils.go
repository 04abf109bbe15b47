package utils

import (
	"context"
	"fmt"
	"time"

	logger_wrapper "github.com/PavelAgarkov/liveness-pkg/logger"
	logger "github.com/PavelAgarkov/liveness-pkg/logger/zap_engine"
)

func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		logger.WriteErrorLog(ctx, &logger_wrapper.LogEntry{
			Msg:       "recovered from panic in goroutine",
			Error:     fmt.Errorf("%v", r),
			Component: "utils",
			Method:    "Recover",
		})
	}
}

// WaitOrCtx спит wait или выходит раньше по отмене контекста
func WaitOrCtx(ctx context.Context, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
