package predictions

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/travigo/stationboard/pkg/ctdf"
)

// MaxPerDirection is how many arrivals are kept per stop.
const MaxPerDirection = 3

type Feed interface {
	Predictions(ctx context.Context, stopID string) ([]ctdf.ArrivalEvent, error)
}

type Aggregator struct {
	Feed Feed
	Now  func() time.Time
}

func NewAggregator(feed Feed) *Aggregator {
	return &Aggregator{
		Feed: feed,
		Now:  time.Now,
	}
}

// MinutesUntil returns floor((arrival - now) / 1m) + 1, so an arrival 61
// seconds away reports 2 and one 30 seconds overdue reports 0.
func MinutesUntil(arrival time.Time, now time.Time) int {
	return int(math.Floor(arrival.Sub(now).Minutes())) + 1
}

// Predict returns up to MaxPerDirection minute countdowns for a stop, in feed
// order. A short result is returned as-is.
func (a *Aggregator) Predict(ctx context.Context, stopID string) ([]int, error) {
	arrivals, err := a.Feed.Predictions(ctx, stopID)
	if err != nil {
		return nil, err
	}

	now := a.Now()

	minutes := make([]int, 0, MaxPerDirection)
	for _, arrival := range arrivals {
		if len(minutes) == MaxPerDirection {
			break
		}

		minutes = append(minutes, MinutesUntil(arrival.ArrivalTime, now))
	}

	log.Debug().
		Str("stop", stopID).
		Int("events", len(arrivals)).
		Ints("minutes", minutes).
		Msg("Calculated arrival countdowns")

	return minutes, nil
}
