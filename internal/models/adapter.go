package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

const PredictResponseVersion = 1

var ErrMissingPrice = errors.New("prediction response has no price field")

// PredictResponseV1 is the only prediction shape the rest of the module sees.
type PredictResponseV1 struct {
	Version        int             `json:"version"`
	PredictedPrice float64         `json:"predicted_price"`
	Raw            json.RawMessage `json:"raw"`
}

// PriceKeys are the names the backend has used for the price, in order of
// preference.
var PriceKeys = []string{"predicted_price", "price", "prediction"}

// AdaptPredictResponse maps a raw /api/predict body onto PredictResponseV1.
// Each key is decoded on its own, so echoed details of any type are ignored;
// the first price key holding a number or numeric string wins. A body the
// adapter cannot understand is a SERVER-class error: the client cannot tell a
// bad request from a changed server contract.
func AdaptPredictResponse(body []byte) (PredictResponseV1, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		if err == nil {
			err = errors.New("body is not a JSON object")
		}
		return PredictResponseV1{}, &APIError{
			Message:        MsgPredictionFailed,
			Classification: ClassServer,
			Err:            fmt.Errorf("decode predict response: %w", err),
		}
	}

	var success bool
	if raw, ok := fields["success"]; ok && json.Unmarshal(raw, &success) == nil && !success {
		var msg string
		if raw, ok := fields["error"]; !ok || json.Unmarshal(raw, &msg) != nil || msg == "" {
			msg = MsgPredictionFailed
		}
		return PredictResponseV1{}, &APIError{
			Message:        msg,
			Classification: ClassServer,
			Err:            errors.New("backend reported success=false"),
		}
	}

	for _, key := range PriceKeys {
		if price, ok := priceValue(fields[key]); ok {
			return PredictResponseV1{
				Version:        PredictResponseVersion,
				PredictedPrice: price,
				Raw:            json.RawMessage(body),
			}, nil
		}
	}

	return PredictResponseV1{}, &APIError{
		Message:        MsgPredictionFailed,
		Classification: ClassServer,
		Err:            ErrMissingPrice,
	}
}

// priceValue accepts a JSON number or a numeric string. Booleans, objects and
// formatted strings such as "₹5,823" are not prices.
func priceValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}

	switch p := v.(type) {
	case float64:
		return p, true
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
