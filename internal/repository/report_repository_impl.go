package repository

import (
	"medicor-backend/internal/domain/entity"
	domainRepo "medicor-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(db *gorm.DB, report *entity.Report) error {
	return db.Create(report).Error
}

func (r *reportRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Report, error) {
	var reports []entity.Report
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) FindByIDAndUserID(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (*entity.Report, error) {
	var report entity.Report
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
