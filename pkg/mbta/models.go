package mbta

// JSON:API documents returned by the v3 API. Pointers mark fields whose
// absence has to be detected.

type document[T any] struct {
	Data *[]resource[T] `json:"data"`
}

type resource[T any] struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes *T     `json:"attributes"`
}

type predictionAttributes struct {
	UpdateType           *string `json:"update_type"`
	Status               *string `json:"status"`
	DirectionID          *int    `json:"direction_id"`
	ArrivalTime          *string `json:"arrival_time"`
	DepartureTime        *string `json:"departure_time"`
	ScheduleRelationship *string `json:"schedule_relationship"`
}

type vehicleAttributes struct {
	Label               *string  `json:"label"`
	DirectionID         *int     `json:"direction_id"`
	Bearing             *float64 `json:"bearing"`
	CurrentStatus       *string  `json:"current_status"`
	CurrentStopSequence *int     `json:"current_stop_sequence"`
}

type stopAttributes struct {
	Name         *string  `json:"name"`
	PlatformName *string  `json:"platform_name"`
	Description  *string  `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

func deref[T any](value *T) T {
	if value == nil {
		return *new(T)
	}
	return *value
}
