package models

type Classification string

const (
	ClassNetwork    Classification = "NETWORK"
	ClassTimeout    Classification = "TIMEOUT"
	ClassValidation Classification = "VALIDATION"
	ClassServer     Classification = "SERVER"
	ClassUnknown    Classification = "UNKNOWN"
)

const (
	MsgNetwork          = "Network connection failed. Please check your internet connection."
	MsgTimeout          = "Request timed out. Please try again."
	MsgServer           = "Server error occurred. Please try again later."
	MsgValidation       = "Invalid data provided. Please check your inputs."
	MsgPredictionFailed = "Failed to predict flight price. Please try again."
	MsgUnknown          = "An unexpected error occurred. Please try again."
	MsgUnauthorized     = "Unauthorized. Please login again."
	MsgForbidden        = "Access forbidden."
	MsgNotFound         = "API endpoint not found."
)

// APIError is the classified form of a failed request. Message is safe to show
// to end users; Err keeps the underlying cause for logs.
type APIError struct {
	Message        string            `json:"message"`
	Classification Classification    `json:"classification"`
	HTTPStatus     int               `json:"http_status,omitempty"`
	Fields         map[string]string `json:"fields,omitempty"`
	Err            error             `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return string(e.Classification) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Classification) + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ClientError reports whether the server rejected the request itself (4xx).
func (e *APIError) ClientError() bool {
	return e.HTTPStatus >= 400 && e.HTTPStatus < 500
}

// Retryable is false for 4xx responses and for anything classified as
// VALIDATION; sending the same request again cannot succeed.
func (e *APIError) Retryable() bool {
	return !e.ClientError() && e.Classification != ClassValidation
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrSameCity      ValidationError = "Destination must be different from source"
	ErrDurationRange ValidationError = "Duration must be between 0.5 and 24 hours"
	ErrDaysLeftRange ValidationError = "Days left must be a whole number between 1 and 365"
)
