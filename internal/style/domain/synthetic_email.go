package domain

import (
	"time"

	authdomain "stylemail-backend/internal/auth/domain"
)

// SyntheticEmail is a machine-generated sample awaiting human review.
// A sample is either approved (terminal) or pending. Rejecting a pending
// sample records the rating/feedback on it and spawns a successor whose
// OriginalEmailID points back at it, forming a singly-linked revision chain.
type SyntheticEmail struct {
	ID              string           `json:"id" gorm:"primaryKey"`
	UserID          string           `json:"user_id" gorm:"index;not null"`
	User            *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category        string           `json:"category" gorm:"index;not null"`
	Content         string           `json:"content" gorm:"not null"`
	Approved        bool             `json:"approved" gorm:"default:false"`
	Rating          *int             `json:"rating,omitempty"`
	Feedback        *string          `json:"feedback,omitempty"`
	OriginalEmailID *string          `json:"original_email_id,omitempty" gorm:"index"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
