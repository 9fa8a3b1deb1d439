package dto

import "medicor-backend/internal/domain/diagnosis"

type PredictRequest struct {
	Symptoms string `json:"symptoms" validate:"required"`
}

type PredictResponse struct {
	Success    bool                 `json:"success"`
	Symptoms   []string             `json:"symptoms"`
	Prediction diagnosis.Prediction `json:"prediction"`
}

type SpeechExtractRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

type SpeechExtractResponse struct {
	Success  bool     `json:"success"`
	Symptoms []string `json:"symptoms"`
}

type SymptomSuggestionsResponse struct {
	Success  bool     `json:"success"`
	Symptoms []string `json:"symptoms"`
}
