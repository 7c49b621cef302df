package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/travigo/stationboard/pkg/stationquery"
)

const (
	DefaultInterval = 5 * time.Second

	columnWidth = 16
)

// Direction A is the northbound platform, direction B the southbound one.
var directionHeadings = [2]string{"NORTHBOUND", "SOUTHBOUND"}

type Fetcher interface {
	Fetch(ctx context.Context, stationName string) (stationquery.Record, error)
}

type Board struct {
	StationName string
	Fetcher     Fetcher
	Interval    time.Duration
	Out         io.Writer
}

// Run refreshes the board immediately and then every Interval until ctx is
// cancelled. A failed refresh shows every slot as missing.
func (b *Board) Run(ctx context.Context) error {
	interval := b.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := b.Refresh(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (b *Board) Refresh(ctx context.Context) error {
	record, err := b.Fetcher.Fetch(ctx, b.StationName)
	if err != nil {
		log.Warn().Err(err).Str("station", b.StationName).Msg("Failed to fetch predictions")
		record = stationquery.Record{}
	}

	_, err = io.WriteString(b.Out, Render(b.StationName, record))
	return err
}

// Render lays the record out as two columns of countdowns under the station
// name.
func Render(stationName string, record stationquery.Record) string {
	var builder strings.Builder

	directions := [2][stationquery.SlotsPerDirection]stationquery.Slot{record.DirectionA(), record.DirectionB()}

	fmt.Fprintln(&builder, stationName)
	fmt.Fprintf(&builder, "%-*s%s\n", columnWidth, directionHeadings[0], directionHeadings[1])

	for i := 0; i < stationquery.SlotsPerDirection; i++ {
		fmt.Fprintf(&builder, "%-*s%s\n", columnWidth, countdown(directions[0][i]), countdown(directions[1][i]))
	}

	return builder.String()
}

func countdown(slot stationquery.Slot) string {
	if !slot.Valid {
		return stationquery.Sentinel
	}
	return fmt.Sprintf("%d MINS", slot.Minutes)
}
