package repository

import (
	"time"

	styledomain "stylemail-backend/internal/style/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailPairRepository implements EmailPairRepository using GORM
type emailPairRepository struct {
	db *gorm.DB
}

// NewEmailPairRepository creates a new GORM-based EmailPairRepository
func NewEmailPairRepository(db *gorm.DB) EmailPairRepository {
	return &emailPairRepository{db: db}
}

func (r *emailPairRepository) CreateBatch(pairs []*styledomain.EmailPair) error {
	now := time.Now()
	for _, pair := range pairs {
		if pair.ID == "" {
			pair.ID = uuid.New().String()
		}
		pair.CreatedAt = now
	}
	return r.db.Create(&pairs).Error
}

func (r *emailPairRepository) FindByUser(userID string) ([]*styledomain.EmailPair, error) {
	var pairs []*styledomain.EmailPair
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&pairs).Error
	return pairs, err
}
