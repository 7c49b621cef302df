package ctdf

type Stop struct {
	ID           string
	Name         string
	PlatformName string
	Description  string

	Latitude  float64
	Longitude float64
}
