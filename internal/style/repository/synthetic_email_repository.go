package repository

import (
	"errors"
	"time"

	styledomain "stylemail-backend/internal/style/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// syntheticEmailRepository implements SyntheticEmailRepository using GORM
type syntheticEmailRepository struct {
	db *gorm.DB
}

// NewSyntheticEmailRepository creates a new GORM-based SyntheticEmailRepository
func NewSyntheticEmailRepository(db *gorm.DB) SyntheticEmailRepository {
	return &syntheticEmailRepository{db: db}
}

func (r *syntheticEmailRepository) Create(email *styledomain.SyntheticEmail) error {
	if email.ID == "" {
		email.ID = uuid.New().String()
	}
	email.CreatedAt = time.Now()
	email.UpdatedAt = time.Now()
	return r.db.Create(email).Error
}

func (r *syntheticEmailRepository) CreateBatch(emails []*styledomain.SyntheticEmail) error {
	now := time.Now()
	for _, email := range emails {
		if email.ID == "" {
			email.ID = uuid.New().String()
		}
		email.CreatedAt = now
		email.UpdatedAt = now
	}
	return r.db.Create(&emails).Error
}

func (r *syntheticEmailRepository) FindByID(id string) (*styledomain.SyntheticEmail, error) {
	var email styledomain.SyntheticEmail
	err := r.db.Where("id = ?", id).First(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

func (r *syntheticEmailRepository) FindByIDs(ids []string) ([]*styledomain.SyntheticEmail, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var emails []*styledomain.SyntheticEmail
	err := r.db.Where("id IN ?", ids).Find(&emails).Error
	return emails, err
}

func (r *syntheticEmailRepository) FindByUser(userID string) ([]*styledomain.SyntheticEmail, error) {
	var emails []*styledomain.SyntheticEmail
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&emails).Error
	return emails, err
}

func (r *syntheticEmailRepository) FindApprovedByUser(userID string) ([]*styledomain.SyntheticEmail, error) {
	var emails []*styledomain.SyntheticEmail
	err := r.db.Where("user_id = ? AND approved = ?", userID, true).Order("updated_at DESC").Find(&emails).Error
	return emails, err
}

// Approve flips approved on a row that is still pending. The WHERE guard
// makes the transition single-shot: a second caller sees zero rows affected.
func (r *syntheticEmailRepository) Approve(id string, rating *int, feedback *string) (bool, error) {
	result := r.db.Model(&styledomain.SyntheticEmail{}).
		Where("id = ? AND approved = ? AND rating IS NULL", id, false).
		Updates(map[string]interface{}{
			"approved":   true,
			"rating":     rating,
			"feedback":   feedback,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkRejected records rejection feedback exactly once per row; the
// rating IS NULL guard keeps concurrent rejections from double-regenerating.
func (r *syntheticEmailRepository) MarkRejected(id string, rating int, feedback string) (bool, error) {
	result := r.db.Model(&styledomain.SyntheticEmail{}).
		Where("id = ? AND approved = ? AND rating IS NULL", id, false).
		Updates(map[string]interface{}{
			"rating":     rating,
			"feedback":   feedback,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
