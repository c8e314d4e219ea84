package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	composedomain "stylemail-backend/internal/compose/domain"
	composedto "stylemail-backend/internal/compose/dto"
	"stylemail-backend/internal/compose/repository"
	styledomain "stylemail-backend/internal/style/domain"
	stylerepo "stylemail-backend/internal/style/repository"
	"stylemail-backend/pkg/ai"
	"stylemail-backend/pkg/config"
)

// maxStyleExamples caps how many approved samples are fed to the model per
// composition
const maxStyleExamples = 5

// defaultStyleSummary is used when the user has no stored analysis to
// describe their writing
const defaultStyleSummary = "Professional, clear, and concise style."

// composeUsecase implements ComposeUsecase interface
type composeUsecase struct {
	emailRepo    repository.GeneratedEmailRepository
	sampleRepo   stylerepo.SyntheticEmailRepository
	analysisRepo stylerepo.StyleAnalysisRepository
	profileRepo  stylerepo.StyleProfileRepository
	pairRepo     stylerepo.EmailPairRepository
	stylist      ai.Stylist
	finder       ExampleFinder
	config       *config.Config
}

// NewComposeUsecase creates a new instance of composeUsecase
func NewComposeUsecase(
	emailRepo repository.GeneratedEmailRepository,
	sampleRepo stylerepo.SyntheticEmailRepository,
	analysisRepo stylerepo.StyleAnalysisRepository,
	profileRepo stylerepo.StyleProfileRepository,
	pairRepo stylerepo.EmailPairRepository,
	cfg *config.Config,
) ComposeUsecase {
	return &composeUsecase{
		emailRepo:    emailRepo,
		sampleRepo:   sampleRepo,
		analysisRepo: analysisRepo,
		profileRepo:  profileRepo,
		pairRepo:     pairRepo,
		config:       cfg,
	}
}

func (u *composeUsecase) SetStylist(svc ai.Stylist) {
	u.stylist = svc
}

func (u *composeUsecase) SetExampleFinder(finder ExampleFinder) {
	u.finder = finder
}

// GenerateEmail drafts an email in the user's approved style. All request
// fields are validated before any model or retrieval call is made.
func (u *composeUsecase) GenerateEmail(ctx context.Context, userID string, req *composedto.ComposeRequest) (*composedomain.GeneratedEmail, error) {
	if strings.TrimSpace(req.Recipient) == "" {
		return nil, fmt.Errorf("%w: recipient is required", composedomain.ErrValidation)
	}
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("%w: topic is required", composedomain.ErrValidation)
	}
	points := make([]string, 0, len(req.KeyPoints))
	for _, p := range req.KeyPoints {
		if strings.TrimSpace(p) != "" {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: at least one key point is required", composedomain.ErrValidation)
	}
	if u.stylist == nil {
		return nil, errors.New("AI service not configured")
	}

	profile, err := u.profileRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil && u.config.ComposeRequireProfile {
		return nil, composedomain.ErrNoStyleProfile
	}

	summary, examples, err := u.resolveStyle(ctx, userID, req.Topic)
	if err != nil {
		return nil, err
	}

	content, err := u.stylist.ComposeEmail(ctx, ai.ComposeInput{
		Recipient:    req.Recipient,
		Topic:        req.Topic,
		KeyPoints:    points,
		StyleSummary: summary,
		Examples:     examples,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", composedomain.ErrCompositionFailed, err)
	}

	email := &composedomain.GeneratedEmail{
		UserID:    userID,
		Recipient: req.Recipient,
		Topic:     req.Topic,
		KeyPoints: points,
		Content:   content,
	}
	if err := u.emailRepo.Create(email); err != nil {
		return nil, err
	}

	return email, nil
}

func (u *composeUsecase) ListGeneratedEmails(userID string) ([]*composedomain.GeneratedEmail, error) {
	return u.emailRepo.FindByUser(userID)
}

// resolveStyle assembles the style summary and example emails for a
// composition. Approved samples are preferred, selected by topic similarity
// when an example finder is wired and by recency otherwise. A user who never
// completed the feedback loop falls back to the raw answers they submitted.
func (u *composeUsecase) resolveStyle(ctx context.Context, userID, topic string) (string, []string, error) {
	approved, err := u.sampleRepo.FindApprovedByUser(userID)
	if err != nil {
		return "", nil, err
	}

	var examples []string
	if len(approved) > 0 {
		examples = u.pickExamples(ctx, userID, topic, approved)
	} else {
		pairs, err := u.pairRepo.FindByUser(userID)
		if err != nil {
			return "", nil, err
		}
		// FindByUser orders newest first
		for _, p := range pairs {
			if len(examples) >= maxStyleExamples {
				break
			}
			examples = append(examples, p.Answer)
		}
	}

	analysis, err := u.analysisRepo.FindLatestByUser(userID)
	if err != nil {
		return "", nil, err
	}
	summary := defaultStyleSummary
	if analysis != nil && strings.TrimSpace(analysis.Summary) != "" {
		summary = analysis.Summary
	}

	return summary, examples, nil
}

// pickExamples selects up to maxStyleExamples approved samples, topic-nearest
// first when similarity search is available, newest first otherwise.
func (u *composeUsecase) pickExamples(ctx context.Context, userID, topic string, approved []*styledomain.SyntheticEmail) []string {
	byID := make(map[string]*styledomain.SyntheticEmail, len(approved))
	for _, s := range approved {
		byID[s.ID] = s
	}

	if u.finder != nil {
		ids, err := u.finder.FindStyleExamples(ctx, userID, topic, maxStyleExamples)
		if err != nil {
			log.Printf("[Compose] example retrieval failed, falling back to recency: %v", err)
		} else if len(ids) > 0 {
			examples := make([]string, 0, len(ids))
			for _, id := range ids {
				// The index may lag behind the live approved set, only
				// trust rows that are still approved
				if s, ok := byID[id]; ok {
					examples = append(examples, s.Content)
				}
			}
			if len(examples) > 0 {
				return examples
			}
		}
	}

	// FindApprovedByUser orders newest first
	limit := maxStyleExamples
	if len(approved) < limit {
		limit = len(approved)
	}
	examples := make([]string, 0, limit)
	for _, s := range approved[:limit] {
		examples = append(examples, s.Content)
	}
	return examples
}
