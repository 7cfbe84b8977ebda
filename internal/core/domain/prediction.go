package domain

import "errors"

var ErrModelNotFound = errors.New("model not found")

// FeatureCount is the length of the input vector every model expects:
// age, gender, relationship_status, occupation_status, use_social_media,
// daily_social_media_time, then one flag per tracked platform.
const FeatureCount = 15

// ModelMetrics holds the evaluation scores recorded for a model on the
// held-out test set.
type ModelMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1_score"`
}

// Prediction is the outcome of scoring one feature vector.
type Prediction struct {
	Label      int     // 0 = low risk, 1 = high risk
	Text       string  // human-readable label
	Confidence float64 // reported model accuracy
}
