package usecase

import (
	"context"
	"errors"
	"time"

	"medicor-backend/internal/converter"
	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/domain/analysis"
	"medicor-backend/internal/domain/entity"
	"medicor-backend/internal/domain/repository"
	"medicor-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

type ReportUsecase interface {
	AnalyzeReport(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeReportRequest) (*dto.AnalyzeReportResponse, error)
	ListReports(ctx context.Context, userID uuid.UUID) (*dto.ReportListResponse, error)
	DownloadReport(ctx context.Context, userID uuid.UUID, reportID uuid.UUID) (*dto.ReportDownloadResponse, error)
}

// txRunner executes fn inside a unit of work. The production runner
// wraps a gorm transaction; tests substitute one that calls fn
// directly against an in-memory repository.
type txRunner func(ctx context.Context, fn func(tx *gorm.DB) error) error

func gormTxRunner(db *gorm.DB, log *logrus.Logger) txRunner {
	return func(ctx context.Context, fn func(tx *gorm.DB) error) error {
		tx := db.WithContext(ctx).Begin()
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit().Error; err != nil {
			log.Warnf("Failed commit transaction: %+v", err)
			return err
		}
		return nil
	}
}

type reportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reportRepo   repository.ReportRepository
	analyzer     *analysis.Analyzer
	auditService service.AuditService
	delay        time.Duration
	inTx         txRunner
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	analyzer *analysis.Analyzer,
	auditService service.AuditService,
	delay time.Duration,
) ReportUsecase {
	return &reportUsecase{
		db:           db,
		log:          log,
		reportRepo:   reportRepo,
		analyzer:     analyzer,
		auditService: auditService,
		delay:        delay,
		inTx:         gormTxRunner(db, log),
	}
}

func (u *reportUsecase) AnalyzeReport(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeReportRequest) (*dto.AnalyzeReportResponse, error) {
	if err := wait(ctx, u.delay); err != nil {
		return nil, err
	}

	result := u.analyzer.Analyze(req.FileName, req.FileType)

	report := &entity.Report{
		UserID:         userID,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
		FileType:       req.FileType,
		AnalysisResult: result,
	}

	err := u.inTx(ctx, func(tx *gorm.DB) error {
		if err := u.reportRepo.Create(tx, report); err != nil {
			u.log.Warnf("Failed to create report: %+v", err)
			return err
		}

		u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionReportAnalyze, "report", report.ID.String(), map[string]any{
			"file_name":  report.FileName,
			"confidence": result.Confidence,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.AnalyzeReportResponse{
		Success:  true,
		Analysis: converter.ReportToAnalysis(report),
		ReportID: report.ID,
	}, nil
}

func (u *reportUsecase) ListReports(ctx context.Context, userID uuid.UUID) (*dto.ReportListResponse, error) {
	reports, err := u.reportRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to fetch reports: %+v", err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Success: true,
		Reports: converter.ReportsToResponses(reports),
	}, nil
}

func (u *reportUsecase) DownloadReport(ctx context.Context, userID uuid.UUID, reportID uuid.UUID) (*dto.ReportDownloadResponse, error) {
	report, err := u.reportRepo.FindByIDAndUserID(u.db.WithContext(ctx), reportID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		u.log.Warnf("Failed to fetch report: %+v", err)
		return nil, err
	}

	download, url := converter.ReportToDownload(report)
	return &dto.ReportDownloadResponse{
		Success:     true,
		Report:      download,
		DownloadURL: url,
	}, nil
}
