// Package sensors provides the field sensor feed: a ThingSpeak channel when
// one is configured, and a mock feed that produces the same shape.
package sensors

import (
	"context"
	"fmt"

	"github.com/agricure/api/internal/logger"
	"github.com/agricure/api/internal/models"
)

// Fetcher returns the most recent sensor reading.
type Fetcher interface {
	Latest(ctx context.Context) (models.SensorReading, error)
}

// FallbackFetcher reads from a live feed and falls back to another fetcher,
// normally the mock feed, when the live feed fails or is not configured.
type FallbackFetcher struct {
	live     Fetcher
	fallback Fetcher
	log      *logger.Logger
}

// NewFallbackFetcher creates a FallbackFetcher. live may be nil, in which
// case every reading comes from fallback.
func NewFallbackFetcher(live, fallback Fetcher, log *logger.Logger) *FallbackFetcher {
	return &FallbackFetcher{
		live:     live,
		fallback: fallback,
		log:      log,
	}
}

// Latest implements Fetcher.
func (f *FallbackFetcher) Latest(ctx context.Context) (models.SensorReading, error) {
	if f.live != nil {
		reading, err := f.live.Latest(ctx)
		if err == nil {
			return reading, nil
		}
		f.log.Warn("Live sensor feed unavailable, using demo data", map[string]interface{}{
			"error": err.Error(),
		})
	}

	reading, err := f.fallback.Latest(ctx)
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("failed to read fallback sensor feed: %w", err)
	}
	reading.Connected = false
	reading.Source = models.SourceMock
	return reading, nil
}
