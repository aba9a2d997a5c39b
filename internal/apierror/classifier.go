package apierror

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"github.com/dharmasatrya/flightpredict/internal/client"
	"github.com/dharmasatrya/flightpredict/internal/metrics"
	"github.com/dharmasatrya/flightpredict/internal/models"
)

type Classifier struct {
	credentials *client.Credentials
	logger      *slog.Logger
}

// NewClassifier returns a classifier that clears credentials on a 401.
// credentials may be nil.
func NewClassifier(credentials *client.Credentials, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{credentials: credentials, logger: logger}
}

// Classify maps a transport failure onto the error taxonomy. Order matters:
// timeouts first, then anything with a response, then failures with no
// response at all.
func (c *Classifier) Classify(err error) *models.APIError {
	if err == nil {
		return nil
	}

	apiErr := c.classify(err)
	metrics.APIErrorsTotal.WithLabelValues(string(apiErr.Classification)).Inc()
	c.logger.Warn("api error",
		"classification", apiErr.Classification,
		"status", apiErr.HTTPStatus,
		"error", err,
	)
	return apiErr
}

func (c *Classifier) classify(err error) *models.APIError {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if isTimeout(err) {
		return &models.APIError{Message: models.MsgTimeout, Classification: models.ClassTimeout, Err: err}
	}

	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return c.fromStatus(err, statusErr)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return &models.APIError{Message: models.MsgNetwork, Classification: models.ClassNetwork, Err: err}
	}

	return &models.APIError{Message: models.MsgUnknown, Classification: models.ClassUnknown, Err: err}
}

func (c *Classifier) fromStatus(err error, e *client.StatusError) *models.APIError {
	apiErr := &models.APIError{HTTPStatus: e.StatusCode, Err: err}

	switch e.StatusCode {
	case http.StatusBadRequest:
		apiErr.Classification = models.ClassValidation
		apiErr.Message = orDefault(e.ServerMessage(), models.MsgValidation)
	case http.StatusUnauthorized:
		apiErr.Classification = models.ClassValidation
		apiErr.Message = models.MsgUnauthorized
		c.credentials.Clear()
	case http.StatusForbidden:
		apiErr.Classification = models.ClassValidation
		apiErr.Message = models.MsgForbidden
	case http.StatusNotFound:
		apiErr.Classification = models.ClassValidation
		apiErr.Message = models.MsgNotFound
	case http.StatusInternalServerError:
		apiErr.Classification = models.ClassServer
		apiErr.Message = orDefault(e.ServerMessage(), models.MsgServer)
	default:
		apiErr.Classification = models.ClassServer
		apiErr.Message = models.MsgServer
	}

	return apiErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
