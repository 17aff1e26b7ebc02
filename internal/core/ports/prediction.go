package ports

import "context"

// PredictionRequest is the exact JSON shape the external model expects.
// All values are strings in the model's own vocabulary; the mapping from the
// richer UI vocabulary happens before this struct is built.
type PredictionRequest struct {
	Age               string `json:"age"`
	AgeFirstSex       string `json:"ageFirstSex"`
	SexualPartners    string `json:"sexualPartners"`
	Smoking           string `json:"smoking"`
	STDsHistory       string `json:"stdsHistory"`
	Region            string `json:"region"`
	Insurance         string `json:"insurance"`
	HPVTest           string `json:"hpvTest"`
	PapSmear          string `json:"papSmear"`
	LastScreeningType string `json:"lastScreeningType"`
}

// PredictionResponse is the model's risk classification.
type PredictionResponse struct {
	Success         bool    `json:"success"`
	RiskPrediction  int     `json:"risk_prediction"`
	RiskPercentage  float64 `json:"risk_percentage"`
	RiskProbability float64 `json:"risk_probability"`
	Recommendation  string  `json:"recommendation"`
	RiskLevel       string  `json:"risk_level"`
	Error           string  `json:"error,omitempty"`
}

// ModelHealth reports whether the external model is ready to serve.
type ModelHealth struct {
	Status       string `json:"status"`
	ModelsLoaded bool   `json:"models_loaded"`
}

// PredictionClient talks to the external risk model. A non-success response,
// a timeout, or an unreachable service all surface as
// domain.ErrPredictionUnavailable so callers can tell the clinician to retry.
type PredictionClient interface {
	Predict(ctx context.Context, req PredictionRequest) (*PredictionResponse, error)
	Health(ctx context.Context) (*ModelHealth, error)
}
