package validation

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/dharmasatrya/flightpredict/internal/models"
)

type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Validate checks a raw form record before anything goes over the network.
// It never panics; problems are reported per field.
func Validate(raw models.RawQuery) Result {
	errs := make(map[string]string)

	for _, field := range models.RequiredFields {
		if !IsText(raw[field]) {
			errs[field] = models.FieldLabels[field] + " is required"
		}
	}

	source, destination := raw[models.FieldSourceCity], raw[models.FieldDestinationCity]
	if IsText(source) && IsText(destination) &&
		strings.TrimSpace(cast.ToString(source)) == strings.TrimSpace(cast.ToString(destination)) {
		errs[models.FieldDestinationCity] = models.ErrSameCity.Error()
	}

	if v := raw[models.FieldDuration]; !IsBlank(v) {
		d, err := ParseNumber(v)
		if err != nil || d < models.MinDuration || d > models.MaxDuration {
			errs[models.FieldDuration] = models.ErrDurationRange.Error()
		}
	}

	if v := raw[models.FieldDaysLeft]; !IsBlank(v) {
		n, err := ParseInteger(v)
		if err != nil || n < models.MinDaysLeft || n > models.MaxDaysLeft {
			errs[models.FieldDaysLeft] = models.ErrDaysLeftRange.Error()
		}
	}

	if len(errs) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: errs}
}

// Err turns a failed result into a VALIDATION-class error. Messages are joined
// in canonical field order so the text is stable.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}

	msgs := make([]string, 0, len(r.Errors))
	for _, field := range models.Fields {
		if msg, ok := r.Errors[field]; ok {
			msgs = append(msgs, msg)
		}
	}

	return &models.APIError{
		Message:        strings.Join(msgs, "; "),
		Classification: models.ClassValidation,
		Fields:         r.Errors,
	}
}
