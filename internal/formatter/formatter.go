package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dharmasatrya/flightpredict/internal/models"
	"github.com/dharmasatrya/flightpredict/internal/validation"
)

// Format builds the canonical nine-field query. Unparseable or zero numeric
// values fall back to the defaults instead of failing.
func Format(raw models.RawQuery) models.FlightQuery {
	return models.FlightQuery{
		Airline:         text(raw[models.FieldAirline]),
		SourceCity:      text(raw[models.FieldSourceCity]),
		DestinationCity: text(raw[models.FieldDestinationCity]),
		DepartureTime:   text(raw[models.FieldDepartureTime]),
		ArrivalTime:     text(raw[models.FieldArrivalTime]),
		Stops:           text(raw[models.FieldStops]),
		Class:           text(raw[models.FieldClass]),
		Duration:        duration(raw[models.FieldDuration]),
		DaysLeft:        daysLeft(raw[models.FieldDaysLeft]),
	}
}

func ToRaw(q models.FlightQuery) models.RawQuery {
	return models.RawQuery{
		models.FieldAirline:         q.Airline,
		models.FieldSourceCity:      q.SourceCity,
		models.FieldDestinationCity: q.DestinationCity,
		models.FieldDepartureTime:   q.DepartureTime,
		models.FieldArrivalTime:     q.ArrivalTime,
		models.FieldStops:           q.Stops,
		models.FieldClass:           q.Class,
		models.FieldDuration:        q.Duration,
		models.FieldDaysLeft:        q.DaysLeft,
	}
}

func text(v any) string {
	return strings.TrimSpace(cast.ToString(v))
}

func duration(v any) float64 {
	d, err := validation.ParseNumber(v)
	if err != nil || d == 0 {
		return models.DefaultDuration
	}
	return d
}

// daysLeft truncates fractional input, so "15.7" becomes 15.
func daysLeft(v any) int {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if n, err := strconv.Atoi(s); err == nil && n != 0 {
			return n
		}
		v = s
	}

	f, err := validation.ParseNumber(v)
	if err != nil {
		return models.DefaultDaysLeft
	}
	n := int(math.Trunc(f))
	if n == 0 {
		return models.DefaultDaysLeft
	}
	return n
}
