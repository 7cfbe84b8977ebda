package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

func TestPredictionService_Models(t *testing.T) {
	svc := NewPredictionService(zerolog.Nop())

	models := svc.Models(context.Background())
	want := []string{"Decision Tree", "Logistic Regression", "Naive Bayes", "Random Forest", "XGBoost"}
	if len(models) != len(want) {
		t.Fatalf("expected %d models, got %d", len(want), len(models))
	}
	for i, name := range want {
		if models[i] != name {
			t.Fatalf("expected %s at index %d, got %s", name, i, models[i])
		}
	}
}

func TestPredictionService_Predict(t *testing.T) {
	svc := NewPredictionService(zerolog.Nop())

	lowRisk := make([]float64, domain.FeatureCount)
	pred, err := svc.Predict(context.Background(), "Logistic Regression", lowRisk)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if pred.Label != 0 || pred.Text != "Low Mental Health Risk" {
		t.Fatalf("all-zero vector should be low risk, got %+v", pred)
	}
	if pred.Confidence <= 0 || pred.Confidence > 1 {
		t.Fatalf("confidence out of range: %f", pred.Confidence)
	}

	// Heavy usage across every platform pushes the score over the threshold.
	highRisk := []float64{30, 1, 0, 0, 1, 9, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	pred, err = svc.Predict(context.Background(), "Logistic Regression", highRisk)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if pred.Label != 1 || pred.Text != "High Mental Health Risk" {
		t.Fatalf("heavy-usage vector should be high risk, got %+v", pred)
	}
}

func TestPredictionService_PredictUnknownModel(t *testing.T) {
	svc := NewPredictionService(zerolog.Nop())

	_, err := svc.Predict(context.Background(), "Perceptron", make([]float64, domain.FeatureCount))
	if !errors.Is(err, domain.ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestPredictionService_PredictBadVector(t *testing.T) {
	svc := NewPredictionService(zerolog.Nop())

	if _, err := svc.Predict(context.Background(), "XGBoost", []float64{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short feature vector")
	}
}

func TestPredictionService_Metrics(t *testing.T) {
	svc := NewPredictionService(zerolog.Nop())

	m, err := svc.Metrics(context.Background(), "Random Forest")
	if err != nil {
		t.Fatalf("Metrics returned error: %v", err)
	}
	for name, v := range map[string]float64{
		"accuracy":  m.Accuracy,
		"precision": m.Precision,
		"recall":    m.Recall,
		"f1":        m.F1,
	} {
		if v <= 0 || v > 1 {
			t.Fatalf("%s out of range: %f", name, v)
		}
	}

	if _, err := svc.Metrics(context.Background(), "nope"); !errors.Is(err, domain.ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}
