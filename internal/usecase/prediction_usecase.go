package usecase

import (
	"context"
	"time"

	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/domain/diagnosis"

	"github.com/sirupsen/logrus"
)

type PredictionUsecase interface {
	Predict(ctx context.Context, req *dto.PredictRequest) (*dto.PredictResponse, error)
	ExtractSpeech(req *dto.SpeechExtractRequest) *dto.SpeechExtractResponse
	SuggestSymptoms(query string) *dto.SymptomSuggestionsResponse
}

type predictionUsecase struct {
	log   *logrus.Logger
	delay time.Duration
}

// NewPredictionUsecase wires the diagnosis core behind the API. The
// delay imitates the analysis pause the original product showed users;
// it is configurable so tests can run with zero.
func NewPredictionUsecase(log *logrus.Logger, delay time.Duration) PredictionUsecase {
	return &predictionUsecase{log: log, delay: delay}
}

func (u *predictionUsecase) Predict(ctx context.Context, req *dto.PredictRequest) (*dto.PredictResponse, error) {
	if err := wait(ctx, u.delay); err != nil {
		return nil, err
	}

	keys := diagnosis.Normalize(req.Symptoms)
	prediction := diagnosis.Resolve(keys)

	u.log.WithFields(logrus.Fields{
		"symptoms": keys,
		"disease":  prediction.Disease,
	}).Info("Symptom prediction resolved")

	return &dto.PredictResponse{
		Success:    true,
		Symptoms:   keys,
		Prediction: prediction,
	}, nil
}

func (u *predictionUsecase) ExtractSpeech(req *dto.SpeechExtractRequest) *dto.SpeechExtractResponse {
	return &dto.SpeechExtractResponse{
		Success:  true,
		Symptoms: diagnosis.ExtractFromTranscript(req.Transcript),
	}
}

func (u *predictionUsecase) SuggestSymptoms(query string) *dto.SymptomSuggestionsResponse {
	return &dto.SymptomSuggestionsResponse{
		Success:  true,
		Symptoms: diagnosis.Suggest(query),
	}
}

// wait sleeps for the configured duration unless the request context
// is cancelled first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
