package jobs

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"topiclens/internal/classifier"
	"topiclens/internal/metrics"
)

// Monitor periodically probes the classification endpoint and tracks its
// availability.
type Monitor struct {
	client   classifier.Client
	interval time.Duration
	healthy  atomic.Bool
}

// NewMonitor creates a classifier endpoint monitor.
func NewMonitor(client classifier.Client, interval time.Duration) *Monitor {
	return &Monitor{
		client:   client,
		interval: interval,
	}
}

// Healthy reports the result of the last probe.
func (m *Monitor) Healthy() bool {
	return m.healthy.Load()
}

// Start begins the background probe loop. Blocks until ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	log.Printf("Classifier monitor started (interval: %v)", m.interval)

	// Probe immediately on start
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Classifier monitor stopped")
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := m.client.Ping(probeCtx)
	wasHealthy := m.healthy.Load()

	if err != nil {
		m.healthy.Store(false)
		metrics.ClassifierUp.Set(0)
		if wasHealthy {
			log.Printf("Classifier monitor: endpoint unreachable: %v", err)
		}
		return
	}

	m.healthy.Store(true)
	metrics.ClassifierUp.Set(1)
	if !wasHealthy {
		log.Println("Classifier monitor: endpoint reachable")
	}
}
