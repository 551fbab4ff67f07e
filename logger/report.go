package logger

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type outputStat struct {
	rows  int64
	bytes int64
}

var (
	errorsOrderbook int64
	errorsTrades    int64
	warnsOrderbook  int64
	warnsTrades     int64
	outputs         sync.Map // map[string]*outputStat
)

func recordWarn(component string) {
	if strings.Contains(component, "trade") {
		atomic.AddInt64(&warnsTrades, 1)
	} else if strings.Contains(component, "orderbook") {
		atomic.AddInt64(&warnsOrderbook, 1)
	}
}

func recordError(component string) {
	if strings.Contains(component, "trade") {
		atomic.AddInt64(&errorsTrades, 1)
	} else if strings.Contains(component, "orderbook") {
		atomic.AddInt64(&errorsOrderbook, 1)
	}
}

// RecordOutput accounts one written record of the given size against the
// named output file.
func RecordOutput(name string, size int) {
	v, _ := outputs.LoadOrStore(name, &outputStat{})
	stat := v.(*outputStat)
	atomic.AddInt64(&stat.rows, 1)
	atomic.AddInt64(&stat.bytes, int64(size))
}

func startReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(log)
			}
		}
	}()
}

// StartReport begins periodic logging of system and output statistics.
// It exposes the internal startReport function for use by other packages.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	startReport(ctx, log, interval)
}

func logReport(log *Log) {
	cpuPercent, _ := cpu.Percent(0, false)
	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")
	outputData := map[string]map[string]int64{}
	outputs.Range(func(k, v any) bool {
		name := k.(string)
		stat := v.(*outputStat)
		outputData[name] = map[string]int64{
			"rows":  atomic.LoadInt64(&stat.rows),
			"bytes": atomic.LoadInt64(&stat.bytes),
		}
		return true
	})

	cpuPct := 0.0
	if len(cpuPercent) > 0 {
		cpuPct = cpuPercent[0]
	}

	fields := Fields{
		"errors_orderbook": atomic.LoadInt64(&errorsOrderbook),
		"errors_trades":    atomic.LoadInt64(&errorsTrades),
		"warns_orderbook":  atomic.LoadInt64(&warnsOrderbook),
		"warns_trades":     atomic.LoadInt64(&warnsTrades),
		"goroutines":       runtime.NumGoroutine(),
		"cpu_percent":      cpuPct,
		"memory_mb":        int64(memStats.Used) / 1024 / 1024,
		"disk_mb":          int64(diskStats.Used) / 1024 / 1024,
		"outputs":          outputData,
	}

	log.WithComponent("report").WithFields(fields).Info("runtime report")
}
