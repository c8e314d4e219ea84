package repository

import (
	"errors"
	"time"

	styledomain "stylemail-backend/internal/style/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// styleAnalysisRepository implements StyleAnalysisRepository using GORM
type styleAnalysisRepository struct {
	db *gorm.DB
}

// NewStyleAnalysisRepository creates a new GORM-based StyleAnalysisRepository
func NewStyleAnalysisRepository(db *gorm.DB) StyleAnalysisRepository {
	return &styleAnalysisRepository{db: db}
}

func (r *styleAnalysisRepository) Create(analysis *styledomain.StyleAnalysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	analysis.CreatedAt = time.Now()
	analysis.UpdatedAt = time.Now()
	return r.db.Create(analysis).Error
}

func (r *styleAnalysisRepository) FindLatestByUser(userID string) (*styledomain.StyleAnalysis, error) {
	var analysis styledomain.StyleAnalysis
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}
