package mbta

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/travigo/stationboard/pkg/ctdf"
)

const DefaultTripUpdatesURL = "https://cdn.mbta.com/realtime/TripUpdates.pb"

// TripUpdatesFeed serves predictions from the GTFS-Realtime TripUpdates feed
// instead of the JSON API. The whole feed is downloaded for every call.
type TripUpdatesFeed struct {
	url       *url.URL
	transport transport
}

func NewTripUpdatesFeed(config Config) (*TripUpdatesFeed, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultTripUpdatesURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{}
	}

	feedURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, err
	}

	return &TripUpdatesFeed{
		url: feedURL,
		transport: transport{
			httpClient: config.HTTPClient,
			timeout:    config.Timeout,
			retries:    config.Retries,
		},
	}, nil
}

// Predictions returns every stop time update for stopID, soonest first.
func (f *TripUpdatesFeed) Predictions(ctx context.Context, stopID string) ([]ctdf.ArrivalEvent, error) {
	body, err := f.transport.get(ctx, f.url, "application/x-protobuf")
	if err != nil {
		return nil, err
	}

	feed := &gtfs.FeedMessage{}
	if err := proto.Unmarshal(body, feed); err != nil {
		return nil, malformed(redact(f.url), "%v", err)
	}

	var arrivals []ctdf.ArrivalEvent
	for _, entity := range feed.GetEntity() {
		tripUpdate := entity.GetTripUpdate()
		if tripUpdate == nil {
			continue
		}

		for _, update := range tripUpdate.GetStopTimeUpdate() {
			if update.GetStopId() != stopID {
				continue
			}

			timestamp := update.GetArrival().GetTime()
			if timestamp == 0 {
				timestamp = update.GetDeparture().GetTime()
			}
			if timestamp == 0 {
				continue
			}

			arrivals = append(arrivals, ctdf.ArrivalEvent{
				ID:          entity.GetId(),
				UpdateType:  "trip_update",
				Status:      update.GetScheduleRelationship().String(),
				DirectionID: int(tripUpdate.GetTrip().GetDirectionId()),
				ArrivalTime: time.Unix(timestamp, 0),
			})
		}
	}

	// Trip updates are grouped per trip, not per stop.
	sort.SliceStable(arrivals, func(a, b int) bool {
		return arrivals[a].ArrivalTime.Before(arrivals[b].ArrivalTime)
	})

	return arrivals, nil
}
