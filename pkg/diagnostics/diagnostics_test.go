package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travigo/stationboard/pkg/ctdf"
)

func TestDescribeVehicles(t *testing.T) {
	vehicles := []ctdf.Vehicle{
		{ID: "R-5477", Label: "1712", DirectionID: 1, CurrentStopSequence: 50, CurrentStatus: "STOPPED_AT", Bearing: 45},
		{ID: "R-5480", Label: "1850", DirectionID: 0, CurrentStopSequence: 999, CurrentStatus: "IN_TRANSIT_TO"},
	}

	reports := DescribeVehicles(RedLine, vehicles)
	require.Len(t, reports, 2)

	assert.Equal(t, "NorthBound", reports[0].Direction)
	assert.Equal(t, "Kendall/MIT", reports[0].Station)
	assert.Equal(t, "SouthBound", reports[1].Direction)
	assert.Equal(t, "UNKNOWN", reports[1].Station)

	other := DescribeVehicles("Orange", vehicles)
	assert.Equal(t, "", other[0].Station)
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Print(&out, VehicleReport{ID: "R-5477", Direction: "NorthBound"}))

	assert.Contains(t, out.String(), "diagnostics.VehicleReport{")
	assert.Contains(t, out.String(), `"R-5477"`)
	assert.Contains(t, out.String(), "Direction:")
}
