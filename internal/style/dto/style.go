package dto

import (
	styledomain "stylemail-backend/internal/style/domain"
)

type EmailPairInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type SubmitEmailPairsRequest struct {
	EmailPairs []EmailPairInput `json:"emailPairs" binding:"required,dive"`
}

type SubmitEmailPairsResult struct {
	StyleAnalysis    *styledomain.StyleAnalysis                  `json:"styleAnalysis"`
	SyntheticEmails  map[string][]*styledomain.SyntheticEmail    `json:"syntheticEmails"`
	FailedCategories []string                                    `json:"failedCategories,omitempty"`
}

type FeedbackRequest struct {
	EmailID    string `json:"emailId" binding:"required"`
	IsApproved *bool  `json:"isApproved" binding:"required"`
	Rating     *int   `json:"rating,omitempty"`
	Comments   string `json:"comments,omitempty"`
}

type FeedbackResult struct {
	Success       bool                          `json:"success"`
	UpdatedSample *styledomain.SyntheticEmail   `json:"updatedSample,omitempty"`
	NewSample     *styledomain.SyntheticEmail   `json:"newSample,omitempty"`
}

// SampleView wraps a synthetic email with its successor id when the sample
// has been superseded by a regeneration.
type SampleView struct {
	*styledomain.SyntheticEmail
	SupersededBy string `json:"superseded_by,omitempty"`
}

type UserDataResponse struct {
	EmailPairs           []*styledomain.EmailPair    `json:"emailPairs"`
	StyleAnalysis        *styledomain.StyleAnalysis  `json:"styleAnalysis"`
	SyntheticEmails      []*SampleView               `json:"syntheticEmails"`
	HasCompletedAnalysis bool                        `json:"hasCompletedAnalysis"`
	HasStyleProfile      bool                        `json:"hasStyleProfile"`
}

type SaveProfileResponse struct {
	Success bool                       `json:"success"`
	Profile *styledomain.StyleProfile  `json:"profile"`
}
