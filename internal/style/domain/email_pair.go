package domain

import (
	"time"

	authdomain "stylemail-backend/internal/auth/domain"
)

// EmailPair is one question/answer sample submitted as style evidence.
// Immutable once created.
type EmailPair struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	UserID    string           `json:"user_id" gorm:"index;not null"`
	User      *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Question  string           `json:"question" gorm:"not null"`
	Answer    string           `json:"answer" gorm:"not null"`
	CreatedAt time.Time        `json:"created_at"`
}
