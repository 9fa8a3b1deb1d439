package http

import (
	"net/http"

	"medicor-backend/internal/delivery/http/handler"
	"medicor-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	predictionHandler *handler.PredictionHandler
	reportHandler     *handler.ReportHandler
	contactHandler    *handler.ContactHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	predictionHandler *handler.PredictionHandler,
	reportHandler *handler.ReportHandler,
	contactHandler *handler.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		predictionHandler: predictionHandler,
		reportHandler:     reportHandler,
		contactHandler:    contactHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Symptom prediction (public, like the original in-browser checker)
	api.HandleFunc("/predict", r.predictionHandler.Predict).Methods(http.MethodPost)
	api.HandleFunc("/speech/extract", r.predictionHandler.ExtractSpeech).Methods(http.MethodPost)
	api.HandleFunc("/symptoms", r.predictionHandler.SuggestSymptoms).Methods(http.MethodGet)

	// Medical reports (protected)
	reports := api.PathPrefix("").Subrouter()
	reports.Use(r.authMiddleware.Authenticate)
	reports.HandleFunc("/analyze-report", r.reportHandler.AnalyzeReport).Methods(http.MethodPost)
	reports.HandleFunc("/reports", r.reportHandler.ListReports).Methods(http.MethodGet)
	reports.HandleFunc("/reports/{reportId}/download", r.reportHandler.DownloadReport).Methods(http.MethodGet)

	// Contact form (public)
	api.HandleFunc("/contact", r.contactHandler.SendMessage).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"OK","message":"Medicor API is running"}`))
}
