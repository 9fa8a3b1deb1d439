package repository

import (
	"medicor-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(db *gorm.DB, report *entity.Report) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Report, error)
	FindByIDAndUserID(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (*entity.Report, error)
}
