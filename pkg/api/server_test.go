package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travigo/stationboard/pkg/mbta"
	"github.com/travigo/stationboard/pkg/stationquery"
	"github.com/travigo/stationboard/pkg/stations"
)

type stubPredictor map[string][]int

func (p stubPredictor) Predict(ctx context.Context, stopID string) ([]int, error) {
	if stopID == "70069" {
		return nil, mbta.ErrUpstreamUnavailable
	}
	return p[stopID], nil
}

func newTestApp() *fiber.App {
	directory := stations.DefaultDirectory()
	service := stationquery.NewService(directory, stubPredictor{
		"70072": {3, 6, 9},
		"70071": {2},
		"70070": {1},
	})

	return NewApp(directory, service)
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp.StatusCode, body
}

func TestVersion(t *testing.T) {
	status, body := get(t, newTestApp(), "/core/version")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "v0.1", body["version"])
}

func TestStations(t *testing.T) {
	status, body := get(t, newTestApp(), "/core/stations")
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, []any{
		map[string]any{"name": "CENTRAL SQUARE", "stops": []any{"70070", "70069"}},
		map[string]any{"name": "KENDALL/MIT", "stops": []any{"70072", "70071"}},
	}, body["stations"])
}

func TestPredictions(t *testing.T) {
	app := newTestApp()
	kendall := "/core/predictions?station=" + url.QueryEscape("KENDALL/MIT")

	t.Run("basic", func(t *testing.T) {
		status, body := get(t, app, kendall)
		require.Equal(t, http.StatusOK, status)

		assert.Equal(t, "KENDALL/MIT", body["station"])
		assert.Equal(t, "3,6,9,2,N/A,N/A", body["record"])
		assert.NotContains(t, body, "query_time")

		directions := body["directions"].([]any)
		require.Len(t, directions, 2)

		first := directions[0].(map[string]any)
		assert.Equal(t, []any{"3", "6", "9"}, first["arrivals"])
		assert.NotContains(t, first, "stop_id")
	})

	t.Run("detailed", func(t *testing.T) {
		status, body := get(t, app, kendall+"&detailed=true")
		require.Equal(t, http.StatusOK, status)

		assert.Contains(t, body, "query_time")

		directions := body["directions"].([]any)
		assert.Equal(t, "70072", directions[0].(map[string]any)["stop_id"])
		assert.Equal(t, "70071", directions[1].(map[string]any)["stop_id"])
		assert.Equal(t, []any{"2", "N/A", "N/A"}, directions[1].(map[string]any)["arrivals"])
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			path   string
			status int
			code   string
		}{
			{"/core/predictions", http.StatusBadRequest, ""},
			{"/core/predictions?station=NOWHERE", http.StatusNotFound, stationquery.CodeUnknownStation},
			{"/core/predictions?station=" + url.QueryEscape("CENTRAL SQUARE"), http.StatusGatewayTimeout, stationquery.CodeUpstreamUnavailable},
		}

		for _, test := range tests {
			status, body := get(t, app, test.path)

			assert.Equal(t, test.status, status, test.path)
			assert.Contains(t, body, "error")
			if test.code != "" {
				assert.Equal(t, test.code, body["code"], test.path)
			}
		}
	})
}
