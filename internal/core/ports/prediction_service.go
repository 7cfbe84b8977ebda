package ports

import (
	"context"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

// PredictionService is the external collaborator wrapping the pre-fitted
// classifiers. The auth gateway invokes it only after access is granted.
type PredictionService interface {
	// Models lists the available model names.
	Models(ctx context.Context) []string
	// Predict scores a feature vector with the selected model.
	Predict(ctx context.Context, modelID string, features []float64) (*domain.Prediction, error)
	// Metrics returns the recorded evaluation scores for the selected model.
	Metrics(ctx context.Context, modelID string) (*domain.ModelMetrics, error)
}
