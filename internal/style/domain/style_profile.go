package domain

import (
	"time"

	authdomain "stylemail-backend/internal/auth/domain"
)

// StyleProfile marks that a user froze their approved samples as the profile
// used for on-demand composition. One row per user, upserted on every freeze.
// The profile content itself is the live set of approved samples, so freezing
// again after approving more samples widens the profile.
type StyleProfile struct {
	ID            string           `json:"id" gorm:"primaryKey"`
	UserID        string           `json:"user_id" gorm:"uniqueIndex;not null"`
	User          *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ApprovedCount int              `json:"approved_count"`
	FrozenAt      time.Time        `json:"frozen_at"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
