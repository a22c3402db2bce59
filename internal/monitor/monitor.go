package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose reachability the monitor tracks; in practice
// the record-store gateway client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is a snapshot of the last probe.
type Status struct {
	Store     bool
	LastCheck time.Time
}

// Monitor probes the record store on a fixed interval so /health can
// answer without issuing a store call per request.
type Monitor struct {
	store    Pinger
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	status Status
	stopCh chan struct{}
}

func New(store Pinger, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{
		Store:     m.checkStore(),
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStore() bool {
	if m.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := m.store.Ping(ctx); err != nil {
		m.logger.Warn("record store probe failed", zap.Error(err))
		return false
	}
	return true
}
