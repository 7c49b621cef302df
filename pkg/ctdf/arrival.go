package ctdf

import "time"

// ArrivalEvent is one predicted arrival of a vehicle at a stop as reported by
// the feed. It is fetched per query and never stored.
type ArrivalEvent struct {
	ID          string
	UpdateType  string
	Status      string
	DirectionID int

	ArrivalTime time.Time
}
