package diagnostics

import (
	"io"

	"github.com/kr/pretty"

	"github.com/travigo/stationboard/pkg/ctdf"
	"github.com/travigo/stationboard/pkg/stations"
)

const RedLine = "Red"

type VehicleReport struct {
	ID        string
	Label     string
	Direction string
	Station   string
	Status    string
	Bearing   float64
}

// DescribeVehicles names each vehicle's direction and, on the Red Line, the
// station its current stop sequence points at.
func DescribeVehicles(route string, vehicles []ctdf.Vehicle) []VehicleReport {
	reports := make([]VehicleReport, 0, len(vehicles))

	for _, vehicle := range vehicles {
		report := VehicleReport{
			ID:        vehicle.ID,
			Label:     vehicle.Label,
			Direction: stations.DirectionName(vehicle.DirectionID),
			Status:    vehicle.CurrentStatus,
			Bearing:   vehicle.Bearing,
		}
		if route == RedLine {
			report.Station = stations.RedLineStationName(vehicle.CurrentStopSequence)
		}

		reports = append(reports, report)
	}

	return reports
}

func Print(w io.Writer, value any) error {
	_, err := pretty.Fprintf(w, "%# v\n", value)
	return err
}
