package repository

import (
	styledomain "stylemail-backend/internal/style/domain"
)

// StyleAnalysisRepository defines persistence operations for style analyses
type StyleAnalysisRepository interface {
	Create(analysis *styledomain.StyleAnalysis) error
	// FindLatestByUser returns the newest analysis for the user, nil if none.
	FindLatestByUser(userID string) (*styledomain.StyleAnalysis, error)
}
