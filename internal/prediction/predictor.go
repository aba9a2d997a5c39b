package prediction

import (
	"context"

	"github.com/dharmasatrya/flightpredict/internal/models"
)

// Predictor is the remote prediction backend. *client.Client implements it.
type Predictor interface {
	Predict(ctx context.Context, q models.FlightQuery) ([]byte, error)
	CheckHealth(ctx context.Context) (models.HealthStatus, error)
	GetModelInfo(ctx context.Context) (models.ModelInfo, error)
	GetOptions(ctx context.Context) (models.Options, error)
}
