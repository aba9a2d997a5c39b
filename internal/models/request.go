package models

// RawQuery is a flight record as submitted by a form: values may be strings,
// numbers or missing entirely.
type RawQuery map[string]any

type Options struct {
	Airlines []string `json:"airlines"`
	Cities   []string `json:"cities"`
	Times    []string `json:"times"`
	Stops    []string `json:"stops"`
	Classes  []string `json:"classes"`
}

type OptionsResponse struct {
	Success bool    `json:"success"`
	Options Options `json:"options"`
}

func DefaultOptions() Options {
	times := []string{"Early Morning", "Morning", "Afternoon", "Evening", "Night", "Late Night"}
	return Options{
		Airlines: []string{"IndiGo", "Air India", "Jet Airways", "SpiceJet", "Multiple carriers", "GoAir", "Vistara"},
		Cities:   []string{"Delhi", "Mumbai", "Bangalore", "Kolkata", "Chennai", "Hyderabad"},
		Times:    times,
		Stops:    []string{"Non-stop", "1 stop", "2 stops", "3 stops", "4 stops"},
		Classes:  []string{"Economy", "Business"},
	}
}
