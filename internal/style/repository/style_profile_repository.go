package repository

import (
	"errors"
	"time"

	styledomain "stylemail-backend/internal/style/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// styleProfileRepository implements StyleProfileRepository using GORM
type styleProfileRepository struct {
	db *gorm.DB
}

// NewStyleProfileRepository creates a new GORM-based StyleProfileRepository
func NewStyleProfileRepository(db *gorm.DB) StyleProfileRepository {
	return &styleProfileRepository{db: db}
}

func (r *styleProfileRepository) Upsert(profile *styledomain.StyleProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing styledomain.StyleProfile
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			profile.ID = uuid.New().String()
			profile.CreatedAt = time.Now()
			profile.UpdatedAt = time.Now()
			return tx.Create(profile).Error
		}

		existing.ApprovedCount = profile.ApprovedCount
		existing.FrozenAt = profile.FrozenAt
		existing.UpdatedAt = time.Now()
		*profile = existing
		return tx.Save(&existing).Error
	})
}

func (r *styleProfileRepository) FindByUser(userID string) (*styledomain.StyleProfile, error) {
	var profile styledomain.StyleProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
