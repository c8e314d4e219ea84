package repository

import (
	"time"

	composedomain "stylemail-backend/internal/compose/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// generatedEmailRepository implements GeneratedEmailRepository using GORM
type generatedEmailRepository struct {
	db *gorm.DB
}

// NewGeneratedEmailRepository creates a new GORM-based GeneratedEmailRepository
func NewGeneratedEmailRepository(db *gorm.DB) GeneratedEmailRepository {
	return &generatedEmailRepository{db: db}
}

func (r *generatedEmailRepository) Create(email *composedomain.GeneratedEmail) error {
	if email.ID == "" {
		email.ID = uuid.New().String()
	}
	email.CreatedAt = time.Now()
	email.UpdatedAt = time.Now()
	return r.db.Create(email).Error
}

func (r *generatedEmailRepository) FindByUser(userID string) ([]*composedomain.GeneratedEmail, error) {
	var emails []*composedomain.GeneratedEmail
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&emails).Error
	return emails, err
}
