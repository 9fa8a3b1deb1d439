package entity

import (
	"time"

	"github.com/google/uuid"

	"medicor-backend/internal/domain/analysis"
)

// Report stores an uploaded medical report together with its analysis
// outcome. FileSize keeps the client-supplied display string ("2.4 MB")
// rather than a byte count.
type Report struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName       string          `gorm:"type:varchar(512);not null" json:"file_name"`
	FileSize       string          `gorm:"type:varchar(64)" json:"file_size"`
	FileType       string          `gorm:"type:varchar(128)" json:"file_type"`
	AnalysisResult analysis.Result `gorm:"type:jsonb" json:"analysis_result"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
