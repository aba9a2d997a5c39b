package apierror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/flightpredict/internal/client"
	"github.com/dharmasatrya/flightpredict/internal/models"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func statusErr(code int, body string) error {
	return fmt.Errorf("POST /api/predict: %w", &client.StatusError{StatusCode: code, Path: client.PathPredict, Body: []byte(body)})
}

func TestClassify(t *testing.T) {
	refused := &url.Error{Op: "Post", URL: "http://localhost:5000/api/predict", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}

	tests := []struct {
		name       string
		err        error
		wantClass  models.Classification
		wantMsg    string
		wantStatus int
	}{
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), models.ClassTimeout, models.MsgTimeout, 0},
		{"canceled", context.Canceled, models.ClassTimeout, models.MsgTimeout, 0},
		{"limiter past deadline", fmt.Errorf("rate limit /api/predict: %w", fmt.Errorf("%w: rate: Wait(n=1) would exceed context deadline", context.DeadlineExceeded)), models.ClassTimeout, models.MsgTimeout, 0},
		{"net timeout", &url.Error{Op: "Get", URL: "http://x", Err: timeoutErr{}}, models.ClassTimeout, models.MsgTimeout, 0},
		{"400 with body", statusErr(400, `{"error":"Missing fields: stops"}`), models.ClassValidation, "Missing fields: stops", 400},
		{"400 without body", statusErr(400, ``), models.ClassValidation, models.MsgValidation, 400},
		{"401", statusErr(401, ``), models.ClassValidation, models.MsgUnauthorized, 401},
		{"403", statusErr(403, ``), models.ClassValidation, models.MsgForbidden, 403},
		{"404", statusErr(404, `{"error":"ignored"}`), models.ClassValidation, models.MsgNotFound, 404},
		{"500 with body", statusErr(500, `{"error":"Model not loaded"}`), models.ClassServer, "Model not loaded", 500},
		{"500 without body", statusErr(500, `<html>`), models.ClassServer, models.MsgServer, 500},
		{"502", statusErr(502, `{"error":"bad gateway"}`), models.ClassServer, models.MsgServer, 502},
		{"429", statusErr(429, ``), models.ClassServer, models.MsgServer, 429},
		{"connection refused", refused, models.ClassNetwork, models.MsgNetwork, 0},
		{"bare", errors.New("boom"), models.ClassUnknown, models.MsgUnknown, 0},
	}

	c := NewClassifier(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := c.Classify(tt.err)

			assert.Equal(t, tt.wantClass, apiErr.Classification)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantStatus, apiErr.HTTPStatus)
			assert.ErrorIs(t, apiErr, tt.err)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, NewClassifier(nil, nil).Classify(nil))
}

func TestClassify_PassesThroughClassifiedErrors(t *testing.T) {
	original := &models.APIError{Message: models.MsgPredictionFailed, Classification: models.ClassServer}

	got := NewClassifier(nil, nil).Classify(fmt.Errorf("attempt: %w", original))

	assert.Same(t, original, got)
}

func TestClassify_UnauthorizedClearsCredentials(t *testing.T) {
	creds := client.NewCredentials("stale-token")
	c := NewClassifier(creds, nil)

	c.Classify(statusErr(403, ``))
	assert.Equal(t, "stale-token", creds.Token())

	c.Classify(statusErr(401, ``))
	assert.Equal(t, "", creds.Token())
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(nil, nil)
	err := statusErr(500, `{"error":"x"}`)

	first, second := c.Classify(err), c.Classify(err)

	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, first.Message, second.Message)
}
