package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medicor-backend/config"
	"medicor-backend/internal/delivery/http/handler"
	"medicor-backend/internal/delivery/http/middleware"
	"medicor-backend/internal/infrastructure/mail"
	"medicor-backend/internal/usecase"
	"medicor-backend/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	predictionHandler := handler.NewPredictionHandler(usecase.NewPredictionUsecase(log, 0), v)
	contactHandler := handler.NewContactHandler(
		usecase.NewContactUsecase(log, mail.NewMockSender(), config.SMTPConfig{To: "support@medicor.example"}), v)

	r := NewRouter(nil, predictionHandler, nil, contactHandler, nil, middleware.NewCORSMiddleware())
	return r.Setup()
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","message":"Medicor API is running"}`, rec.Body.String())
}

func TestCORSAllowedOrigin(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORSUnknownOrigin(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPredictRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/predict",
		strings.NewReader(`{"symptoms":"fever"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
