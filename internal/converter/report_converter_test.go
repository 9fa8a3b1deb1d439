package converter

import (
	"testing"
	"time"

	"medicor-backend/internal/domain/analysis"
	"medicor-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testReport() *entity.Report {
	return &entity.Report{
		ID:       uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		FileName: "chest_xray.pdf",
		FileSize: "1.2 MB",
		FileType: "application/pdf",
		AnalysisResult: analysis.Result{
			Confidence:      91,
			Findings:        []analysis.Finding{{Type: "info", Description: "Clear lung fields", Confidence: 93}},
			Recommendations: []string{"Continue routine checkups"},
			RiskFactors:     []string{"None identified"},
			Medications:     []string{"None required"},
		},
		CreatedAt: time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestReportToAnalysisDateFormat(t *testing.T) {
	res := ReportToAnalysis(testReport())

	// Single-digit month and day, no zero padding.
	assert.Equal(t, "3/5/2026", res.AnalysisDate)
	assert.Equal(t, 91, res.Confidence)
	assert.Equal(t, "chest_xray.pdf", res.FileName)
}

func TestReportToDownloadURL(t *testing.T) {
	report := testReport()
	download, url := ReportToDownload(report)

	assert.Equal(t, "/api/reports/6ba7b810-9dad-11d1-80b4-00c04fd430c8/pdf", url)
	assert.Equal(t, report.FileName, download.FileName)
	assert.Equal(t, "3/5/2026", download.AnalysisDate)
}

func TestReportsToResponsesEmpty(t *testing.T) {
	responses := ReportsToResponses(nil)
	assert.NotNil(t, responses)
	assert.Empty(t, responses)
}
