package stations

// Direction names used by the feed's direction_id attribute.
var directionNames = map[int]string{
	0: "SouthBound",
	1: "NorthBound",
}

var redLineStopSequence = map[int]string{
	1:   "Alewife",
	10:  "Davis",
	20:  "Porter",
	30:  "Harvard",
	40:  "Central",
	50:  "Kendall/MIT",
	60:  "Charles/MGH",
	70:  "Park Street",
	80:  "Downtown Crossing",
	90:  "South Station",
	100: "Broadway",
	110: "Andrew",
	120: "JFK/UMass",
	130: "Savin Hill",    // Ashmont Branch
	140: "Fields Corner", // Ashmont Branch
	150: "Shawmut",       // Ashmont Branch
	160: "Ashmont",       // Ashmont Branch
	170: "North Quincy",  // Braintree Branch
	180: "Wollaston",     // Braintree Branch
	190: "Quincy Center", // Braintree Branch
	200: "Quincy Adams",  // Braintree Branch
	210: "Braintree",     // Braintree Branch
}

func DirectionName(directionID int) string {
	if name, ok := directionNames[directionID]; ok {
		return name
	}

	return "Unknown"
}

// RedLineStationName maps a vehicle's current_stop_sequence to the station it is at.
func RedLineStationName(stopSequence int) string {
	if name, ok := redLineStopSequence[stopSequence]; ok {
		return name
	}

	return "UNKNOWN"
}
