package repository

import (
	styledomain "stylemail-backend/internal/style/domain"
)

// SyntheticEmailRepository defines persistence operations for synthetic
// emails. Approve and MarkRejected are conditional single-row updates so a
// sample can only leave the pending state once, even under concurrent
// retries.
type SyntheticEmailRepository interface {
	Create(email *styledomain.SyntheticEmail) error
	CreateBatch(emails []*styledomain.SyntheticEmail) error
	FindByID(id string) (*styledomain.SyntheticEmail, error)
	FindByIDs(ids []string) ([]*styledomain.SyntheticEmail, error)
	FindByUser(userID string) ([]*styledomain.SyntheticEmail, error)
	FindApprovedByUser(userID string) ([]*styledomain.SyntheticEmail, error)

	// Approve marks a pending sample approved, recording the rating/feedback.
	// Returns false when the row was not pending.
	Approve(id string, rating *int, feedback *string) (bool, error)

	// MarkRejected records rejection feedback on a pending sample that has
	// not received feedback yet. Returns false when the row was not eligible.
	MarkRejected(id string, rating int, feedback string) (bool, error)
}
