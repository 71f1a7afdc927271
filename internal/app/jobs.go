package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/pkg/metrics"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

const defaultSweepHour = 2

// sweepCronSpec builds the daily sweep schedule from the configured hour,
// falling back to 02:00 for missing or out-of-range values.
func sweepCronSpec(hour int64) string {
	if hour < 1 || hour > 23 {
		hour = defaultSweepHour
	}
	return fmt.Sprintf("0 %d * * *", hour)
}

// oprlogRetention converts the configured history window to a duration,
// defaulting to one year.
func oprlogRetention(days int64) time.Duration {
	if days <= 0 {
		days = 365
	}
	return time.Duration(days) * 24 * time.Hour
}

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
		go a.SchedProcessMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc(sweepCronSpec(a.configManager.GetInt64("scheduler", "SweepHour")), func() {
		a.SchedSubscriptionSweep()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		retention := oprlogRetention(a.configManager.GetInt64("marketplace", "OrderHistoryDays"))
		a.gormDB.
			Where("opt_time < ? ", time.Now().
				Add(-retention)).Delete(domain.SysOprLog{})
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSubscriptionSweep deactivates lapsed sellers and emits expiry warnings
func (a *Application) SchedSubscriptionSweep() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	result, err := a.subscriptions.ExpireSweep(context.Background(), time.Now())
	if err != nil {
		zap.L().Error("subscription sweep failed", zap.Error(err))
		return
	}
	zap.L().Info("subscription sweep completed",
		zap.Int("deactivated", result.Deactivated),
		zap.Int("warned", result.Warned))
}

// SchedSystemMonitorTask system monitor
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	// Collect CPU usage
	_cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(_cpuuse) > 0 {
		metrics.SetGauge("system_cpuuse", int64(_cpuuse[0]*100)) // Store as percentage * 100
	}

	// Collect memory usage
	_meminfo, err := mem.VirtualMemory()
	if err == nil {
		metrics.SetGauge("system_memuse", int64(_meminfo.Used/1024/1024))
	}
}

// SchedProcessMonitorTask app process monitor
func (a *Application) SchedProcessMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	// Collect process CPU usage
	cpuuse, err := p.CPUPercent()
	if err == nil {
		metrics.SetGauge("arecamart_cpuuse", int64(cpuuse*100)) // Store as percentage * 100
	}

	// Collect process memory usage
	meminfo, err := p.MemoryInfo()
	if err == nil {
		metrics.SetGauge("arecamart_memuse", int64(meminfo.RSS/1024/1024))
	}
}
