package handler

import (
	"encoding/json"
	"net/http"

	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/usecase"
	"medicor-backend/pkg/response"
	"medicor-backend/pkg/validator"
)

type PredictionHandler struct {
	predictionUsecase usecase.PredictionUsecase
	validator         *validator.CustomValidator
}

func NewPredictionHandler(predictionUsecase usecase.PredictionUsecase, validator *validator.CustomValidator) *PredictionHandler {
	return &PredictionHandler{
		predictionUsecase: predictionUsecase,
		validator:         validator,
	}
}

// Predict resolves free-text symptoms to a prediction record
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Symptoms are required")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Symptoms are required")
		return
	}

	res, err := h.predictionUsecase.Predict(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, res)
}

// ExtractSpeech maps a speech transcript to symptom keys
func (h *PredictionHandler) ExtractSpeech(w http.ResponseWriter, r *http.Request) {
	var req dto.SpeechExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Transcript is required")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Transcript is required")
		return
	}

	response.JSON(w, http.StatusOK, h.predictionUsecase.ExtractSpeech(&req))
}

// SuggestSymptoms returns autocomplete suggestions for the symptom box
func (h *PredictionHandler) SuggestSymptoms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	response.JSON(w, http.StatusOK, h.predictionUsecase.SuggestSymptoms(query))
}
