package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightpredict/internal/models"
)

type recorder struct {
	delays []time.Duration
}

func (r *recorder) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func newRetrier(rec *recorder, maxRetries int) *Retrier {
	return New(Config{MaxRetries: maxRetries, BaseDelay: time.Second, Sleep: rec.sleep}, nil)
}

var (
	errNotFound = &models.APIError{Message: models.MsgNotFound, Classification: models.ClassValidation, HTTPStatus: 404}
	errNetwork  = &models.APIError{Message: models.MsgNetwork, Classification: models.ClassNetwork}
	errServer   = &models.APIError{Message: models.MsgServer, Classification: models.ClassServer, HTTPStatus: 503}
)

func TestExecute_ClientErrorIsNotRetried(t *testing.T) {
	rec := &recorder{}
	calls := 0

	run, err := newRetrier(rec, 3).Execute(context.Background(), func(context.Context) error {
		calls++
		return errNotFound
	})

	assert.Same(t, errNotFound, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, run.Attempts())
	assert.Equal(t, StateFailed, run.State)
	assert.Empty(t, rec.delays)
}

func TestExecute_ValidationWithoutStatusIsNotRetried(t *testing.T) {
	rec := &recorder{}
	invalid := &models.APIError{Message: models.MsgValidation, Classification: models.ClassValidation}

	run, err := newRetrier(rec, 3).Execute(context.Background(), func(context.Context) error {
		return invalid
	})

	assert.Same(t, invalid, err)
	assert.Equal(t, 1, run.Attempts())
	assert.Empty(t, rec.delays)
}

func TestExecute_NetworkErrorsThenSuccess(t *testing.T) {
	rec := &recorder{}
	calls := 0

	run, err := newRetrier(rec, 3).Execute(context.Background(), func(context.Context) error {
		calls++
		if calls <= 2 {
			return errNetwork
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, run.Attempts())
	assert.Equal(t, StateSuccess, run.State)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, rec.delays)
	assert.Equal(t, rec.delays, run.Delays)
	assert.Same(t, errNetwork, run.LastError)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	rec := &recorder{}
	calls := 0

	run, err := newRetrier(rec, 3).Execute(context.Background(), func(context.Context) error {
		calls++
		return errServer
	})

	assert.Same(t, errServer, err)
	assert.Equal(t, 4, calls)
	assert.Equal(t, StateFailed, run.State)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, rec.delays)
}

func TestExecute_ReturnsLastError(t *testing.T) {
	rec := &recorder{}
	errs := []error{errNetwork, errServer}
	calls := 0

	_, err := newRetrier(rec, 1).Execute(context.Background(), func(context.Context) error {
		e := errs[calls]
		calls++
		return e
	})

	assert.Same(t, errServer, err)
}

func TestExecute_ZeroRetries(t *testing.T) {
	rec := &recorder{}
	calls := 0

	_, err := newRetrier(rec, 0).Execute(context.Background(), func(context.Context) error {
		calls++
		return errNetwork
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, rec.delays)
}

func TestExecute_UnclassifiedErrorBecomesUnknown(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("boom")

	_, err := newRetrier(rec, 0).Execute(context.Background(), func(context.Context) error { return boom })

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, models.ClassUnknown, apiErr.Classification)
	assert.ErrorIs(t, err, boom)
}

func TestExecute_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(Config{MaxRetries: 3, BaseDelay: time.Hour}, nil)
	calls := 0

	run, err := r.Execute(ctx, func(context.Context) error {
		calls++
		cancel()
		return errNetwork
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StateFailed, run.State)
}

func TestBackoff(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond}, nil)

	assert.Equal(t, 100*time.Millisecond, r.Backoff(0))
	assert.Equal(t, 200*time.Millisecond, r.Backoff(1))
	assert.Equal(t, 400*time.Millisecond, r.Backoff(2))
}

func TestCall(t *testing.T) {
	rec := &recorder{}
	calls := 0

	got, err := Call(context.Background(), newRetrier(rec, 3), func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errServer
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, []time.Duration{time.Second}, rec.delays)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "attempting", StateAttempting.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "failed", StateFailed.String())
}
