package watchdog

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// CheckCron гоняет внеплановые проверки по cron-расписанию -- в дополнение
// к встроенному циклу или вместо него (например, принудительный прогон
// в окна обслуживания).
type CheckCron struct {
	c  *cron.Cron
	wd Watchdog
}

func NewCheckCron(wd Watchdog) *CheckCron {
	return &CheckCron{
		c:  cron.New(cron.WithSeconds()),
		wd: wd,
	}
}

// Add "*/10 * * * * *" - каждые 10 секунд
func (cc *CheckCron) Add(ctx context.Context, calendar string) {
	_, err := cc.c.AddFunc(calendar, func() {
		cc.wd.Check(ctx)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to add watchdog check cron %s: %v", calendar, err))
	}
}

func (cc *CheckCron) Start() {
	cc.c.Start()
}

func (cc *CheckCron) Stop() {
	cc.c.Stop()
}
