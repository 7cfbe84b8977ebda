package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindmetrics/prediction-api/internal/core/ports"
)

// PredictionHandler exposes the protected prediction routes. All requests
// reach it only after the Auth middleware has granted access.
type PredictionHandler struct {
	predictions ports.PredictionService
}

func NewPredictionHandler(predictions ports.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictions: predictions}
}

// Models lists the available prediction models.
//
// @Summary      List available models
// @Tags         prediction
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  modelsResponse
// @Failure      401  {object}  errorResponse
// @Router       /models [get]
func (h *PredictionHandler) Models(c echo.Context) error {
	return c.JSON(http.StatusOK, modelsResponse{
		Models: h.predictions.Models(c.Request().Context()),
	})
}

// Predict scores a feature vector with the selected model.
//
// @Summary      Predict mental health risk
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      predictionRequest  true  "Feature vector and model choice"
// @Success      200   {object}  predictionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /predict [post]
func (h *PredictionHandler) Predict(c echo.Context) error {
	var req predictionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	prediction, err := h.predictions.Predict(ctx, req.ModelChoice, req.features())
	if err != nil {
		return err
	}

	// Metrics failure is non-fatal: the prediction already happened.
	modelMetrics, _ := h.predictions.Metrics(ctx, req.ModelChoice)

	return c.JSON(http.StatusOK, predictionResponse{
		Prediction:     prediction.Label,
		PredictionText: prediction.Text,
		Confidence:     prediction.Confidence,
		ModelMetrics:   modelMetrics,
	})
}

// Metrics returns the evaluation scores for one model.
//
// @Summary      Get model performance metrics
// @Tags         prediction
// @Produce      json
// @Security     BearerAuth
// @Param        model  path      string  true  "Model name"
// @Success      200    {object}  modelMetricsResponse
// @Failure      404    {object}  errorResponse
// @Router       /metrics/{model} [get]
func (h *PredictionHandler) Metrics(c echo.Context) error {
	name := c.Param("model")

	metrics, err := h.predictions.Metrics(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, modelMetricsResponse{Model: name, Metrics: metrics})
}
