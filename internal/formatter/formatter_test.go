package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/flightpredict/internal/models"
)

var canonical = models.FlightQuery{
	Airline:         "IndiGo",
	SourceCity:      "Delhi",
	DestinationCity: "Mumbai",
	DepartureTime:   "Morning",
	ArrivalTime:     "Evening",
	Stops:           "Non-stop",
	Class:           "Economy",
	Duration:        2.5,
	DaysLeft:        15,
}

func TestFormat_Idempotent(t *testing.T) {
	once := Format(ToRaw(canonical))
	twice := Format(ToRaw(once))

	assert.Equal(t, canonical, once)
	assert.Equal(t, once, twice)
}

func TestFormat_CoercesStrings(t *testing.T) {
	raw := ToRaw(canonical)
	raw["duration"] = "3.75"
	raw["days_left"] = "42"
	raw["airline"] = "  Vistara "

	q := Format(raw)

	assert.Equal(t, 3.75, q.Duration)
	assert.Equal(t, 42, q.DaysLeft)
	assert.Equal(t, "Vistara", q.Airline)
}

func TestFormat_Defaults(t *testing.T) {
	tests := []struct {
		name         string
		duration     any
		daysLeft     any
		wantDuration float64
		wantDaysLeft int
	}{
		{"absent", nil, nil, 2.5, 15},
		{"empty", "", "", 2.5, 15},
		{"garbage", "long", "soon", 2.5, 15},
		{"zero", 0, 0, 2.5, 15},
		{"fractional days", 4.0, "15.7", 4.0, 15},
		{"float days", 1.5, 20.9, 1.5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := ToRaw(canonical)
			raw["duration"] = tt.duration
			raw["days_left"] = tt.daysLeft

			q := Format(raw)

			assert.Equal(t, tt.wantDuration, q.Duration)
			assert.Equal(t, tt.wantDaysLeft, q.DaysLeft)
		})
	}
}

func TestFormat_DropsUnknownFields(t *testing.T) {
	raw := ToRaw(canonical)
	raw["passengers"] = 3

	assert.Equal(t, canonical, Format(raw))
}
