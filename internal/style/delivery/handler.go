package delivery

import (
	"errors"
	"net/http"

	styledomain "stylemail-backend/internal/style/domain"
	styledto "stylemail-backend/internal/style/dto"
	"stylemail-backend/internal/style/usecase"

	"github.com/gin-gonic/gin"
)

// StyleHandler handles style-profile HTTP requests
type StyleHandler struct {
	styleUsecase usecase.StyleUsecase
}

// NewStyleHandler creates a new StyleHandler
func NewStyleHandler(styleUsecase usecase.StyleUsecase) *StyleHandler {
	return &StyleHandler{
		styleUsecase: styleUsecase,
	}
}

// statusForError maps domain errors to HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, styledomain.ErrValidation),
		errors.Is(err, styledomain.ErrNoApprovedSamples):
		return http.StatusBadRequest
	case errors.Is(err, styledomain.ErrEmailNotFound),
		errors.Is(err, styledomain.ErrNoStyleProfile):
		return http.StatusNotFound
	case errors.Is(err, styledomain.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, styledomain.ErrAnalysisFailed),
		errors.Is(err, styledomain.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// SubmitEmailPairs runs style analysis and sample generation over the
// submitted question/answer pairs
// POST /api/style/pairs
func (h *StyleHandler) SubmitEmailPairs(c *gin.Context) {
	userID := c.GetString("userID")

	var req styledto.SubmitEmailPairsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.styleUsecase.SubmitEmailPairs(c.Request.Context(), userID, req.EmailPairs)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SubmitFeedback approves a sample or rejects it with rating and comments,
// returning the regenerated successor on rejection
// POST /api/style/feedback
func (h *StyleHandler) SubmitFeedback(c *gin.Context) {
	userID := c.GetString("userID")

	var req styledto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.styleUsecase.SubmitFeedback(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SaveStyleProfile freezes the approved samples as the style profile
// POST /api/style/profile
func (h *StyleHandler) SaveStyleProfile(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.styleUsecase.SaveStyleProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, styledto.SaveProfileResponse{Success: true, Profile: profile})
}

// GetStyleProfile returns the user's frozen profile marker
// GET /api/style/profile
func (h *StyleHandler) GetStyleProfile(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.styleUsecase.GetStyleProfile(userID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetStyleAnalysis returns the user's latest style analysis
// GET /api/style/analysis
func (h *StyleHandler) GetStyleAnalysis(c *gin.Context) {
	userID := c.GetString("userID")

	analysis, err := h.styleUsecase.GetStyleAnalysis(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if analysis == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no style analysis found, submit email samples first"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetSyntheticEmails returns the user's samples grouped by category, with an
// optional fuzzy content filter
// GET /api/style/samples?q=
func (h *StyleHandler) GetSyntheticEmails(c *gin.Context) {
	userID := c.GetString("userID")
	query := c.Query("q")

	grouped, err := h.styleUsecase.GetSyntheticEmails(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grouped)
}

// GetUserData returns the full read-only projection of the user's style data
// GET /api/style/data
func (h *StyleHandler) GetUserData(c *gin.Context) {
	userID := c.GetString("userID")

	data, err := h.styleUsecase.GetUserData(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}
