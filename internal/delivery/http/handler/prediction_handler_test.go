package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/usecase"
	"medicor-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPredictionHandler() *PredictionHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewPredictionHandler(usecase.NewPredictionUsecase(log, 0), validator.NewValidator())
}

func TestPredictKnownCombination(t *testing.T) {
	h := newPredictionHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/predict",
		strings.NewReader(`{"symptoms":"Fever, Cough, Fatigue"}`))
	rec := httptest.NewRecorder()
	h.Predict(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, []string{"fever", "cough", "fatigue"}, res.Symptoms)
	assert.Equal(t, "Influenza (Flu)", res.Prediction.Disease)
	assert.Len(t, res.Prediction.Medications, 5)
}

func TestPredictSingleSymptomAlias(t *testing.T) {
	h := newPredictionHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/predict",
		strings.NewReader(`{"symptoms":"stomach pain"}`))
	rec := httptest.NewRecorder()
	h.Predict(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"abdominal pain"}, res.Symptoms)
	assert.Equal(t, "Gastritis", res.Prediction.Disease)
}

func TestPredictMissingSymptoms(t *testing.T) {
	h := newPredictionHandler()

	for _, body := range []string{`{}`, `{"symptoms":""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Predict(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"message":"Symptoms are required"}`, rec.Body.String())
	}
}

func TestExtractSpeechTranscript(t *testing.T) {
	h := newPredictionHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/speech/extract",
		strings.NewReader(`{"transcript":"I have a headache and blurry vision"}`))
	rec := httptest.NewRecorder()
	h.ExtractSpeech(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.SpeechExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, []string{"headache", "vision problems"}, res.Symptoms)
}

func TestExtractSpeechMissingTranscript(t *testing.T) {
	h := newPredictionHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/speech/extract", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ExtractSpeech(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Transcript is required"}`, rec.Body.String())
}

func TestSuggestSymptoms(t *testing.T) {
	h := newPredictionHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/symptoms?q=pain", nil)
	rec := httptest.NewRecorder()
	h.SuggestSymptoms(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.SymptomSuggestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Symptoms)
	assert.LessOrEqual(t, len(res.Symptoms), 5)
	for _, s := range res.Symptoms {
		assert.Contains(t, s, "pain")
	}
}

func TestSuggestSymptomsEmptyQuery(t *testing.T) {
	h := newPredictionHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/symptoms", nil)
	rec := httptest.NewRecorder()
	h.SuggestSymptoms(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.SymptomSuggestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Symptoms)
}
