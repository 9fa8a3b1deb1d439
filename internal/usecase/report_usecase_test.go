package usecase

import (
	"context"
	"io"
	"math/rand"
	"sort"
	"testing"
	"time"

	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/domain/analysis"
	"medicor-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// memoryReportRepository keeps reports in a slice, standing in for the
// Postgres-backed implementation. The *gorm.DB argument is ignored.
type memoryReportRepository struct {
	reports []entity.Report
	clock   time.Time
}

func newMemoryReportRepository() *memoryReportRepository {
	return &memoryReportRepository{clock: time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)}
}

func (r *memoryReportRepository) Create(_ *gorm.DB, report *entity.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	r.clock = r.clock.Add(time.Second)
	report.CreatedAt = r.clock
	r.reports = append(r.reports, *report)
	return nil
}

func (r *memoryReportRepository) FindByUserID(_ *gorm.DB, userID uuid.UUID) ([]entity.Report, error) {
	var out []entity.Report
	for _, report := range r.reports {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryReportRepository) FindByIDAndUserID(_ *gorm.DB, id uuid.UUID, userID uuid.UUID) (*entity.Report, error) {
	for i := range r.reports {
		if r.reports[i].ID == id && r.reports[i].UserID == userID {
			report := r.reports[i]
			return &report, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type recordedAudit struct {
	action   string
	entityID string
}

type memoryAuditService struct {
	entries []recordedAudit
}

func (s *memoryAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	s.entries = append(s.entries, recordedAudit{action: action, entityID: entityID})
	return nil
}

func (s *memoryAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.entries = append(s.entries, recordedAudit{action: action, entityID: entityID})
	return nil
}

func newTestReportUsecase(t *testing.T) (*reportUsecase, *memoryReportRepository, *memoryAuditService) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := newMemoryReportRepository()
	audit := &memoryAuditService{}

	u := &reportUsecase{
		db:           db,
		log:          log,
		reportRepo:   repo,
		analyzer:     analysis.NewAnalyzer(rand.New(rand.NewSource(1))),
		auditService: audit,
		inTx: func(ctx context.Context, fn func(tx *gorm.DB) error) error {
			return fn(nil)
		},
	}
	return u, repo, audit
}

func TestAnalyzeThenListRoundTrip(t *testing.T) {
	u, _, audit := newTestReportUsecase(t)
	ctx := context.Background()
	userID := uuid.New()

	analyzed, err := u.AnalyzeReport(ctx, userID, &dto.AnalyzeReportRequest{
		FileName: "chest_xray_2024.pdf",
		FileSize: "2.4 MB",
		FileType: "application/pdf",
	})
	require.NoError(t, err)
	require.True(t, analyzed.Success)
	require.NotEqual(t, uuid.Nil, analyzed.ReportID)

	list, err := u.ListReports(ctx, userID)
	require.NoError(t, err)
	require.True(t, list.Success)
	require.Len(t, list.Reports, 1)

	stored := list.Reports[0]
	assert.Equal(t, analyzed.ReportID, stored.ID)
	assert.Equal(t, analyzed.Analysis.FileName, stored.FileName)
	assert.Equal(t, "application/pdf", stored.FileType)
	assert.Len(t, stored.AnalysisResult.Findings, len(analyzed.Analysis.Findings))
	assert.Equal(t, analyzed.Analysis.Confidence, stored.AnalysisResult.Confidence)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, entity.AuditActionReportAnalyze, audit.entries[0].action)
	assert.Equal(t, analyzed.ReportID.String(), audit.entries[0].entityID)
}

func TestListReportsNewestFirst(t *testing.T) {
	u, _, _ := newTestReportUsecase(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := u.AnalyzeReport(ctx, userID, &dto.AnalyzeReportRequest{FileName: "blood_panel.png", FileType: "image/png"})
	require.NoError(t, err)
	second, err := u.AnalyzeReport(ctx, userID, &dto.AnalyzeReportRequest{FileName: "annual_checkup.txt", FileType: "text/plain"})
	require.NoError(t, err)

	list, err := u.ListReports(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list.Reports, 2)
	assert.Equal(t, second.ReportID, list.Reports[0].ID)
	assert.Equal(t, first.ReportID, list.Reports[1].ID)
}

func TestListReportsScopedToUser(t *testing.T) {
	u, _, _ := newTestReportUsecase(t)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	_, err := u.AnalyzeReport(ctx, owner, &dto.AnalyzeReportRequest{FileName: "lab_results.png", FileType: "image/png"})
	require.NoError(t, err)

	list, err := u.ListReports(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list.Reports)
}

func TestDownloadReportRoundTrip(t *testing.T) {
	u, _, _ := newTestReportUsecase(t)
	ctx := context.Background()
	userID := uuid.New()

	analyzed, err := u.AnalyzeReport(ctx, userID, &dto.AnalyzeReportRequest{FileName: "chest_scan.png", FileType: "image/png"})
	require.NoError(t, err)

	download, err := u.DownloadReport(ctx, userID, analyzed.ReportID)
	require.NoError(t, err)
	require.True(t, download.Success)
	assert.Equal(t, analyzed.Analysis.FileName, download.Report.FileName)
	assert.Equal(t, "/api/reports/"+analyzed.ReportID.String()+"/pdf", download.DownloadURL)

	_, err = u.DownloadReport(ctx, uuid.New(), analyzed.ReportID)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
