package domain

import (
	"time"

	authdomain "stylemail-backend/internal/auth/domain"
)

// StyleCategory is a named cluster of writing-style traits identified during
// analysis.
type StyleCategory struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	KeyCharacteristics []string `json:"key_characteristics"`
}

// StyleAnalysis is one analysis run over a user's email pairs. The newest row
// per user is authoritative; older rows are kept as history.
type StyleAnalysis struct {
	ID         string           `json:"id" gorm:"primaryKey"`
	UserID     string           `json:"user_id" gorm:"index;not null"`
	User       *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Summary    string           `json:"overall_style_summary" gorm:"not null"`
	Categories []StyleCategory  `json:"categories" gorm:"serializer:json"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
