package models

const (
	FieldAirline         = "airline"
	FieldSourceCity      = "source_city"
	FieldDestinationCity = "destination_city"
	FieldDepartureTime   = "departure_time"
	FieldArrivalTime     = "arrival_time"
	FieldStops           = "stops"
	FieldClass           = "class"
	FieldDuration        = "duration"
	FieldDaysLeft        = "days_left"
)

// Fields lists every canonical field in the order the prediction endpoint expects.
var Fields = []string{
	FieldAirline,
	FieldSourceCity,
	FieldDestinationCity,
	FieldDepartureTime,
	FieldArrivalTime,
	FieldStops,
	FieldClass,
	FieldDuration,
	FieldDaysLeft,
}

var RequiredFields = []string{
	FieldAirline,
	FieldSourceCity,
	FieldDestinationCity,
	FieldDepartureTime,
	FieldArrivalTime,
	FieldStops,
	FieldClass,
}

var FieldLabels = map[string]string{
	FieldAirline:         "Airline",
	FieldSourceCity:      "Source City",
	FieldDestinationCity: "Destination City",
	FieldDepartureTime:   "Departure Time",
	FieldArrivalTime:     "Arrival Time",
	FieldStops:           "Stops",
	FieldClass:           "Class",
	FieldDuration:        "Duration (hours)",
	FieldDaysLeft:        "Days Left",
}

const (
	DefaultDuration = 2.5
	DefaultDaysLeft = 15

	MinDuration = 0.5
	MaxDuration = 24.0
	MinDaysLeft = 1
	MaxDaysLeft = 365
)

type FlightQuery struct {
	Airline         string  `json:"airline"`
	SourceCity      string  `json:"source_city"`
	DestinationCity string  `json:"destination_city"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Stops           string  `json:"stops"`
	Class           string  `json:"class"`
	Duration        float64 `json:"duration"`
	DaysLeft        int     `json:"days_left"`
}

func (q FlightQuery) Route() string {
	return q.SourceCity + " → " + q.DestinationCity
}
