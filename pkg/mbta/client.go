package mbta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/travigo/stationboard/pkg/ctdf"
)

const (
	DefaultBaseURL = "https://api-v3.mbta.com"
	DefaultTimeout = 5 * time.Second

	// PageLimit is sent as page[limit] on every list request.
	PageLimit = 50

	jsonAPIMediaType = "application/vnd.api+json"
)

type Config struct {
	BaseURL string
	APIKey  string

	// Timeout bounds each outbound request.
	Timeout time.Duration
	// Retries is the number of extra attempts after a transport failure or
	// temporary status. Zero means a single attempt.
	Retries int

	HTTPClient *http.Client
}

// Client talks to the MBTA v3 API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	transport transport
}

func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{}
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  config.APIKey,
		transport: transport{
			httpClient: config.HTTPClient,
			timeout:    config.Timeout,
			retries:    config.Retries,
		},
	}, nil
}

func (c *Client) endpoint(path string, params url.Values) *url.URL {
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	u := c.baseURL.JoinPath(path)
	u.RawQuery = params.Encode()

	return u
}

func getDocument[T any](ctx context.Context, c *Client, u *url.URL) ([]resource[T], error) {
	body, err := c.transport.get(ctx, u, jsonAPIMediaType)
	if err != nil {
		return nil, err
	}

	var doc document[T]
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, malformed(redact(u), "%v", err)
	}
	if doc.Data == nil {
		return nil, malformed(redact(u), "missing data")
	}

	for i, item := range *doc.Data {
		if item.ID == "" {
			return nil, malformed(redact(u), "data[%d] missing id", i)
		}
		if item.Attributes == nil {
			return nil, malformed(redact(u), "data[%d] missing attributes", i)
		}
	}

	return *doc.Data, nil
}

// Predictions returns the live arrival predictions at a stop in feed order.
// Predictions with neither an arrival nor a departure time (skipped stops) are
// left out.
func (c *Client) Predictions(ctx context.Context, stopID string) ([]ctdf.ArrivalEvent, error) {
	u := c.endpoint("predictions", url.Values{
		"filter[stop]": {stopID},
		"page[limit]":  {strconv.Itoa(PageLimit)},
	})

	resources, err := getDocument[predictionAttributes](ctx, c, u)
	if err != nil {
		return nil, err
	}

	var arrivals []ctdf.ArrivalEvent
	for i, item := range resources {
		attributes := item.Attributes

		if attributes.DirectionID == nil {
			return nil, malformed(redact(u), "data[%d] missing direction_id", i)
		}

		timestamp := attributes.ArrivalTime
		if timestamp == nil {
			timestamp = attributes.DepartureTime
		}
		if timestamp == nil {
			continue
		}

		arrivalTime, err := time.Parse(time.RFC3339, *timestamp)
		if err != nil {
			return nil, malformed(redact(u), "data[%d] arrival_time: %v", i, err)
		}

		arrivals = append(arrivals, ctdf.ArrivalEvent{
			ID:          item.ID,
			UpdateType:  deref(attributes.UpdateType),
			Status:      deref(attributes.Status),
			DirectionID: *attributes.DirectionID,
			ArrivalTime: arrivalTime,
		})
	}

	return arrivals, nil
}

func (c *Client) LiveVehicles(ctx context.Context, route string) ([]ctdf.Vehicle, error) {
	u := c.endpoint("vehicles", url.Values{
		"filter[route]": {route},
		"page[limit]":   {strconv.Itoa(PageLimit)},
	})

	resources, err := getDocument[vehicleAttributes](ctx, c, u)
	if err != nil {
		return nil, err
	}

	vehicles := make([]ctdf.Vehicle, 0, len(resources))
	for i, item := range resources {
		attributes := item.Attributes

		if attributes.DirectionID == nil {
			return nil, malformed(redact(u), "data[%d] missing direction_id", i)
		}

		vehicles = append(vehicles, ctdf.Vehicle{
			ID:                  item.ID,
			Label:               deref(attributes.Label),
			DirectionID:         *attributes.DirectionID,
			Bearing:             deref(attributes.Bearing),
			CurrentStatus:       deref(attributes.CurrentStatus),
			CurrentStopSequence: deref(attributes.CurrentStopSequence),
		})
	}

	return vehicles, nil
}

func (c *Client) LookupStop(ctx context.Context, route string, name string) ([]ctdf.Stop, error) {
	u := c.endpoint("stops", url.Values{
		"filter[route]": {route},
		"filter[name]":  {name},
	})

	resources, err := getDocument[stopAttributes](ctx, c, u)
	if err != nil {
		return nil, err
	}

	stops := make([]ctdf.Stop, 0, len(resources))
	for i, item := range resources {
		attributes := item.Attributes

		if attributes.Name == nil {
			return nil, malformed(redact(u), "data[%d] missing name", i)
		}

		stops = append(stops, ctdf.Stop{
			ID:           item.ID,
			Name:         *attributes.Name,
			PlatformName: deref(attributes.PlatformName),
			Description:  deref(attributes.Description),
			Latitude:     deref(attributes.Latitude),
			Longitude:    deref(attributes.Longitude),
		})
	}

	return stops, nil
}
