package watchdog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	logger_wrapper "github.com/PavelAgarkov/liveness-pkg/logger"
	logger "github.com/PavelAgarkov/liveness-pkg/logger/zap_engine"
	"github.com/PavelAgarkov/liveness-pkg/utils"
)

const DefaultTimeout = 2 * time.Minute

type Config struct {
	Name string
	// Нулевые значения означают ленивый дефолт: Timeout -> 2 минуты,
	// CheckInterval -> половина таймаута на момент первого чтения.
	Timeout       time.Duration
	CheckInterval time.Duration
}

// LivenessWatchdog периодически опрашивает зарегистрированные компоненты
// и на первом зависшем однократно запускает все накопленные действия.
type LivenessWatchdog struct {
	name       string
	parent     context.Context
	components *componentSet
	actions    *actionList

	// наносекунды; 0 -- значение ещё не материализовано
	timeoutNs       atomic.Int64
	checkIntervalNs atomic.Int64

	running   atomic.Bool
	mu        sync.Mutex
	runCancel context.CancelFunc
	wg        sync.WaitGroup
}

func NewLivenessWatchdog(parent context.Context, cfg Config) *LivenessWatchdog {
	if parent == nil {
		parent = context.Background()
	}
	if cfg.Name == "" {
		cfg.Name = "liveness_watchdog"
	}
	w := &LivenessWatchdog{
		name:       cfg.Name,
		parent:     parent,
		components: newComponentSet(),
		actions:    newActionList(),
	}
	if cfg.Timeout > 0 {
		w.timeoutNs.Store(int64(cfg.Timeout))
	}
	if cfg.CheckInterval > 0 {
		w.checkIntervalNs.Store(int64(cfg.CheckInterval))
	}
	return w
}

func (w *LivenessWatchdog) AddComponent(component Component) {
	w.components.Add(component)
}

func (w *LivenessWatchdog) RemoveComponent(component Component) {
	w.components.Remove(component)
}

func (w *LivenessWatchdog) ComponentCount() int {
	return w.components.Len()
}

func (w *LivenessWatchdog) AddAction(action Action) Watchdog {
	w.actions.Append(action)
	return w
}

func (w *LivenessWatchdog) SetTimeout(timeout time.Duration) Watchdog {
	w.timeoutNs.Store(int64(timeout))
	return w
}

func (w *LivenessWatchdog) GetTimeout() time.Duration {
	if w.timeoutNs.Load() == 0 {
		w.timeoutNs.CompareAndSwap(0, int64(DefaultTimeout))
	}
	return time.Duration(w.timeoutNs.Load())
}

func (w *LivenessWatchdog) SetCheckInterval(interval time.Duration) Watchdog {
	w.checkIntervalNs.Store(int64(interval))
	return w
}

// GetCheckInterval материализует дефолт "половина таймаута" при первом
// чтении; дальнейшие SetTimeout уже закешированный интервал не меняют.
func (w *LivenessWatchdog) GetCheckInterval() time.Duration {
	if w.checkIntervalNs.Load() == 0 {
		w.checkIntervalNs.CompareAndSwap(0, int64(w.GetTimeout()/2))
	}
	return time.Duration(w.checkIntervalNs.Load())
}

// IsMeasuring всегда true: точка расширения под будущие бэкенды измерений.
func (w *LivenessWatchdog) IsMeasuring() bool {
	return true
}

// Check -- один проход по реестру. Первый же зависший компонент запускает
// действия, и проход прерывается: одного упавшего достаточно.
func (w *LivenessWatchdog) Check(ctx context.Context) {
	timeout := w.GetTimeout()
	w.components.ForEach(func(component Component) bool {
		if component.IsExpired(timeout) {
			w.fireActions(ctx, component)
			return false
		}
		return true
	})
}

// fireActions запускает все действия в порядке регистрации и безусловно
// очищает список: набор срабатывает не более одного раза.
func (w *LivenessWatchdog) fireActions(ctx context.Context, component Component) {
	logger.WriteWarnLog(ctx, &logger_wrapper.LogEntry{
		Msg:       "stalled component detected, firing actions",
		Component: w.name,
		Method:    "fireActions",
		Args:      fmt.Sprintf("actions: %d", w.actions.Len()),
	})
	for _, action := range w.actions.Snapshot() {
		w.runAction(ctx, action, component)
	}
	w.actions.Clear()
}

func (w *LivenessWatchdog) runAction(ctx context.Context, action Action, component Component) {
	defer func() {
		if r := recover(); r != nil {
			logger.WriteErrorLog(ctx, &logger_wrapper.LogEntry{
				Msg:       "panic in watchdog action",
				Component: w.name,
				Method:    "runAction",
				Error:     fmt.Errorf("panic in action: %v", r),
			})
		}
	}()
	if err := action.Run(ctx, component); err != nil {
		logger.WriteWarnLog(ctx, &logger_wrapper.LogEntry{
			Msg:       "watchdog action failed",
			Component: w.name,
			Method:    "runAction",
			Error:     err,
		})
	}
}

// Start поднимает ровно одну выделенную горутину опроса. Именно выделенную,
// а не задачу в общем пуле: если воркеры приложения встали или пул
// голодает, watchdog всё равно обязан дойти до fireActions.
func (w *LivenessWatchdog) Start() {
	// не даём запустить второй раз, пока уже запущен
	if !w.running.CompareAndSwap(false, true) {
		return
	}

	ctx, cancel := context.WithCancel(w.parent)
	w.mu.Lock()
	w.runCancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer utils.Recover(ctx)
		w.loop(ctx)
	}()
}

func (w *LivenessWatchdog) loop(ctx context.Context) {
	for {
		if err := utils.WaitOrCtx(ctx, w.GetCheckInterval()); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.WriteWarnLog(ctx, &logger_wrapper.LogEntry{
					Msg:       "watchdog loop interrupted",
					Component: w.name,
					Method:    "loop",
					Error:     err,
				})
			}
			return
		}
		logger.WriteDebugLog(ctx, &logger_wrapper.LogEntry{
			Msg:       "watchdog check",
			Component: w.name,
			Method:    "loop",
		})
		w.Check(ctx)
	}
}

// Stop будит спящий цикл и ждёт его полного выхода: после возврата из
// Stop новых проверок из фоновой горутины не будет.
func (w *LivenessWatchdog) Stop() {
	if !w.running.CompareAndSwap(true, false) {
		return // уже остановлен
	}

	w.mu.Lock()
	if w.runCancel != nil {
		w.runCancel()
		w.runCancel = nil
	}
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *LivenessWatchdog) IsStarted() bool {
	return w.running.Load()
}

// Clear очищает реестр и список действий, не трогая жизненный цикл.
func (w *LivenessWatchdog) Clear() {
	w.actions.Clear()
	w.components.Clear()
}
