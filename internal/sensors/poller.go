package sensors

import (
	"context"
	"sync"
	"time"

	"github.com/agricure/api/internal/logger"
	"github.com/agricure/api/internal/models"
)

// Poller keeps the latest reading fresh by fetching on a fixed interval.
// Each poll replaces the previous reading.
type Poller struct {
	fetcher  Fetcher
	log      *logger.Logger
	interval time.Duration

	mu      sync.RWMutex
	latest  models.SensorReading
	fetched bool
}

// NewPoller creates a Poller. It does not fetch until Start or Refresh.
func NewPoller(fetcher Fetcher, interval time.Duration, log *logger.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		log:      log.WithComponent("sensor_poller"),
	}
}

// Start polls immediately and then every interval until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info("Sensor poller started", map[string]interface{}{
		"interval": p.interval.String(),
	})

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			p.log.Info("Sensor poller stopped", nil)
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if _, err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
		p.log.Error("Sensor poll failed", err, nil)
	}
}

// Refresh fetches a reading now and stores it.
func (p *Poller) Refresh(ctx context.Context) (models.SensorReading, error) {
	reading, err := p.fetcher.Latest(ctx)
	if err != nil {
		return models.SensorReading{}, err
	}

	p.mu.Lock()
	p.latest = reading
	p.fetched = true
	p.mu.Unlock()

	p.log.Debug("Sensor reading refreshed", map[string]interface{}{
		"source":    reading.Source,
		"connected": reading.Connected,
	})
	return reading, nil
}

// Snapshot returns the last stored reading and whether there is one.
func (p *Poller) Snapshot() (models.SensorReading, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.fetched
}
