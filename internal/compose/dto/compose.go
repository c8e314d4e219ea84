package dto

import (
	composedomain "stylemail-backend/internal/compose/domain"
)

type ComposeRequest struct {
	Recipient string   `json:"recipient" binding:"required"`
	Topic     string   `json:"topic" binding:"required"`
	KeyPoints []string `json:"keyPoints" binding:"required,min=1"`
}

type ComposeResponse struct {
	Success bool                          `json:"success"`
	Email   *composedomain.GeneratedEmail `json:"email"`
}
