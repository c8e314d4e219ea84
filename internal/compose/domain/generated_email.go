package domain

import (
	"time"

	authdomain "stylemail-backend/internal/auth/domain"
)

// GeneratedEmail is one on-demand composition produced from the user's
// style profile.
type GeneratedEmail struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	UserID    string           `json:"user_id" gorm:"index;not null"`
	User      *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipient string           `json:"recipient"`
	Topic     string           `json:"topic"`
	KeyPoints []string         `json:"key_points" gorm:"serializer:json"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
