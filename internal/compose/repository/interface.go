package repository

import (
	composedomain "stylemail-backend/internal/compose/domain"
)

// GeneratedEmailRepository defines persistence operations for composed emails
type GeneratedEmailRepository interface {
	Create(email *composedomain.GeneratedEmail) error
	FindByUser(userID string) ([]*composedomain.GeneratedEmail, error)
}
