package dto

import (
	"time"

	"github.com/google/uuid"

	"medicor-backend/internal/domain/analysis"
)

type AnalyzeReportRequest struct {
	FileName string `json:"fileName" validate:"required"`
	FileSize string `json:"fileSize"`
	FileType string `json:"fileType"`
	FileData string `json:"fileData"`
}

// ReportAnalysis embeds the analysis result next to the upload
// metadata, mirroring the shape the front end renders directly.
type ReportAnalysis struct {
	FileName        string             `json:"fileName"`
	FileSize        string             `json:"fileSize"`
	AnalysisDate    string             `json:"analysisDate"`
	Confidence      int                `json:"confidence"`
	Findings        []analysis.Finding `json:"findings"`
	Recommendations []string           `json:"recommendations"`
	RiskFactors     []string           `json:"riskFactors"`
	Medications     []string           `json:"medications"`
}

type AnalyzeReportResponse struct {
	Success  bool            `json:"success"`
	Analysis *ReportAnalysis `json:"analysis"`
	ReportID uuid.UUID       `json:"reportId"`
}

type ReportResponse struct {
	ID             uuid.UUID       `json:"id"`
	FileName       string          `json:"fileName"`
	FileSize       string          `json:"fileSize"`
	FileType       string          `json:"fileType"`
	AnalysisResult analysis.Result `json:"analysisResult"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type ReportListResponse struct {
	Success bool             `json:"success"`
	Reports []ReportResponse `json:"reports"`
}

// ReportDownload is the flattened record served by the download
// endpoint; no binary asset exists, only the JSON plus a URL.
type ReportDownload struct {
	FileName        string             `json:"fileName"`
	AnalysisDate    string             `json:"analysisDate"`
	Confidence      int                `json:"confidence"`
	Findings        []analysis.Finding `json:"findings"`
	Recommendations []string           `json:"recommendations"`
	RiskFactors     []string           `json:"riskFactors"`
	Medications     []string           `json:"medications"`
}

type ReportDownloadResponse struct {
	Success     bool            `json:"success"`
	Report      *ReportDownload `json:"report"`
	DownloadURL string          `json:"downloadUrl"`
}
