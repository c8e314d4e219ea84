package delivery

import (
	"errors"
	"net/http"

	composedomain "stylemail-backend/internal/compose/domain"
	composedto "stylemail-backend/internal/compose/dto"
	"stylemail-backend/internal/compose/usecase"

	"github.com/gin-gonic/gin"
)

// ComposeHandler handles on-demand composition HTTP requests
type ComposeHandler struct {
	composeUsecase usecase.ComposeUsecase
}

// NewComposeHandler creates a new ComposeHandler
func NewComposeHandler(composeUsecase usecase.ComposeUsecase) *ComposeHandler {
	return &ComposeHandler{
		composeUsecase: composeUsecase,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, composedomain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, composedomain.ErrNoStyleProfile):
		return http.StatusPreconditionFailed
	case errors.Is(err, composedomain.ErrCompositionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GenerateEmail drafts an email in the caller's writing style
// POST /api/compose
func (h *ComposeHandler) GenerateEmail(c *gin.Context) {
	userID := c.GetString("userID")

	var req composedto.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, err := h.composeUsecase.GenerateEmail(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, composedto.ComposeResponse{Success: true, Email: email})
}

// ListGeneratedEmails returns the caller's composition history, newest first
// GET /api/compose/history
func (h *ComposeHandler) ListGeneratedEmails(c *gin.Context) {
	userID := c.GetString("userID")

	emails, err := h.composeUsecase.ListGeneratedEmails(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emails": emails})
}
