package repository

import (
	styledomain "stylemail-backend/internal/style/domain"
)

// StyleProfileRepository defines persistence operations for the per-user
// frozen-profile marker
type StyleProfileRepository interface {
	Upsert(profile *styledomain.StyleProfile) error
	FindByUser(userID string) (*styledomain.StyleProfile, error)
}
