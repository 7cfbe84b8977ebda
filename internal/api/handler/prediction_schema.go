package handler

import "github.com/mindmetrics/prediction-api/internal/core/domain"

type predictionRequest struct {
	ModelChoice          string  `json:"model_choice"            validate:"required"`
	Age                  float64 `json:"age"                     validate:"gte=0,lte=120"`
	Gender               float64 `json:"gender"                  validate:"gte=0,lte=2"`
	RelationshipStatus   float64 `json:"relationship_status"     validate:"gte=0,lte=3"`
	OccupationStatus     float64 `json:"occupation_status"       validate:"gte=0,lte=3"`
	UseSocialMedia       float64 `json:"use_social_media"        validate:"gte=0,lte=1"`
	DailySocialMediaTime float64 `json:"daily_social_media_time" validate:"gte=0"`
	Discord              float64 `json:"Discord"                 validate:"gte=0,lte=1"`
	Facebook             float64 `json:"Facebook"                validate:"gte=0,lte=1"`
	Instagram            float64 `json:"Instagram"               validate:"gte=0,lte=1"`
	Pinterest            float64 `json:"Pinterest"               validate:"gte=0,lte=1"`
	Reddit               float64 `json:"Reddit"                  validate:"gte=0,lte=1"`
	Snapchat             float64 `json:"Snapchat"                validate:"gte=0,lte=1"`
	TikTok               float64 `json:"TikTok"                  validate:"gte=0,lte=1"`
	Twitter              float64 `json:"Twitter"                 validate:"gte=0,lte=1"`
	YouTube              float64 `json:"YouTube"                 validate:"gte=0,lte=1"`
}

// features flattens the request into the vector the models expect. Order is
// part of the model contract and must not change.
func (r predictionRequest) features() []float64 {
	return []float64{
		r.Age,
		r.Gender,
		r.RelationshipStatus,
		r.OccupationStatus,
		r.UseSocialMedia,
		r.DailySocialMediaTime,
		r.Discord,
		r.Facebook,
		r.Instagram,
		r.Pinterest,
		r.Reddit,
		r.Snapchat,
		r.TikTok,
		r.Twitter,
		r.YouTube,
	}
}

type predictionResponse struct {
	Prediction     int                  `json:"prediction"`
	PredictionText string               `json:"prediction_text"`
	Confidence     float64              `json:"confidence"`
	ModelMetrics   *domain.ModelMetrics `json:"model_metrics,omitempty"`
}

type modelsResponse struct {
	Models []string `json:"models"`
}

type modelMetricsResponse struct {
	Model   string               `json:"model"`
	Metrics *domain.ModelMetrics `json:"metrics"`
}
