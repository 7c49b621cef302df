package ctdf

type Vehicle struct {
	ID    string
	Label string

	DirectionID         int
	Bearing             float64
	CurrentStatus       string
	CurrentStopSequence int
}
