package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"wa-gateway/contract"
	"wa-gateway/observability"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker periodically samples the gateway process (RSS, CPU) and
// logs it next to the session state.
type HeartbeatWorker struct {
	log      *slog.Logger
	tracker  contract.SessionTracker
	metrics  *observability.Metrics
	interval time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	tracker contract.SessionTracker,
	metrics *observability.Metrics,
	interval time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:      log,
		tracker:  tracker,
		metrics:  metrics,
		interval: interval,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			if w.metrics != nil {
				w.metrics.ProcessRSS.Set(float64(rss))
				w.metrics.ProcessCPU.Set(cpu)
			}
			snap := w.tracker.Snapshot()
			w.log.Debug("Heartbeat",
				"state", snap.State,
				"ready", snap.Ready,
				"qr_pending", snap.PendingQR != nil,
				"rss", rss,
				"cpu", cpu,
			)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
