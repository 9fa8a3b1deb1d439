package handler

import (
	"encoding/json"
	"net/http"

	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/delivery/http/middleware"
	"medicor-backend/internal/usecase"
	"medicor-backend/pkg/response"
	"medicor-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// AnalyzeReport runs the report classifier over an upload
func (h *ReportHandler) AnalyzeReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	var req dto.AnalyzeReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Failure(w, http.StatusBadRequest, "Failed to analyze medical report")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Failure(w, http.StatusBadRequest, "Failed to analyze medical report")
		return
	}

	res, err := h.reportUsecase.AnalyzeReport(r.Context(), userID, &req)
	if err != nil {
		response.Failure(w, http.StatusInternalServerError, "Failed to analyze medical report")
		return
	}

	response.JSON(w, http.StatusOK, res)
}

// ListReports returns the caller's reports, newest first
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	res, err := h.reportUsecase.ListReports(r.Context(), userID)
	if err != nil {
		response.Failure(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}

	response.JSON(w, http.StatusOK, res)
}

// DownloadReport serves the flattened report record
func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	reportID, err := uuid.Parse(mux.Vars(r)["reportId"])
	if err != nil {
		response.Failure(w, http.StatusNotFound, "Report not found")
		return
	}

	res, err := h.reportUsecase.DownloadReport(r.Context(), userID, reportID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.Failure(w, http.StatusNotFound, "Report not found")
		default:
			response.Failure(w, http.StatusInternalServerError, "Failed to download report")
		}
		return
	}

	response.JSON(w, http.StatusOK, res)
}
