package converter

import (
	"fmt"

	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/domain/entity"
)

// analysisDateFormat matches the locale date string the original UI
// expects (M/D/YYYY).
const analysisDateFormat = "1/2/2006"

func ReportToResponse(report *entity.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:             report.ID,
		FileName:       report.FileName,
		FileSize:       report.FileSize,
		FileType:       report.FileType,
		AnalysisResult: report.AnalysisResult,
		CreatedAt:      report.CreatedAt,
	}
}

func ReportsToResponses(reports []entity.Report) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, ReportToResponse(&reports[i]))
	}
	return responses
}

// ReportToAnalysis shapes a freshly analyzed report for the analyze
// endpoint response.
func ReportToAnalysis(report *entity.Report) *dto.ReportAnalysis {
	return &dto.ReportAnalysis{
		FileName:        report.FileName,
		FileSize:        report.FileSize,
		AnalysisDate:    report.CreatedAt.Format(analysisDateFormat),
		Confidence:      report.AnalysisResult.Confidence,
		Findings:        report.AnalysisResult.Findings,
		Recommendations: report.AnalysisResult.Recommendations,
		RiskFactors:     report.AnalysisResult.RiskFactors,
		Medications:     report.AnalysisResult.Medications,
	}
}

// ReportToDownload flattens a stored report for the download endpoint.
func ReportToDownload(report *entity.Report) (*dto.ReportDownload, string) {
	download := &dto.ReportDownload{
		FileName:        report.FileName,
		AnalysisDate:    report.CreatedAt.Format(analysisDateFormat),
		Confidence:      report.AnalysisResult.Confidence,
		Findings:        report.AnalysisResult.Findings,
		Recommendations: report.AnalysisResult.Recommendations,
		RiskFactors:     report.AnalysisResult.RiskFactors,
		Medications:     report.AnalysisResult.Medications,
	}
	return download, fmt.Sprintf("/api/reports/%s/pdf", report.ID)
}
