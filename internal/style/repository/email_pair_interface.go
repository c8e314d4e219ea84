package repository

import (
	styledomain "stylemail-backend/internal/style/domain"
)

// EmailPairRepository defines persistence operations for email pairs
type EmailPairRepository interface {
	CreateBatch(pairs []*styledomain.EmailPair) error
	FindByUser(userID string) ([]*styledomain.EmailPair, error)
}
