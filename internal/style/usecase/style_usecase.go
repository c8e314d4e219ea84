package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	styledomain "stylemail-backend/internal/style/domain"
	styledto "stylemail-backend/internal/style/dto"
	"stylemail-backend/internal/style/repository"
	"stylemail-backend/pkg/ai"
	"stylemail-backend/pkg/config"
	"stylemail-backend/pkg/fuzzy"
)

// styleUsecase implements StyleUsecase interface
type styleUsecase struct {
	pairRepo     repository.EmailPairRepository
	analysisRepo repository.StyleAnalysisRepository
	sampleRepo   repository.SyntheticEmailRepository
	profileRepo  repository.StyleProfileRepository
	stylist      ai.Stylist
	indexer      SampleIndexer
	config       *config.Config
}

// NewStyleUsecase creates a new instance of styleUsecase
func NewStyleUsecase(
	pairRepo repository.EmailPairRepository,
	analysisRepo repository.StyleAnalysisRepository,
	sampleRepo repository.SyntheticEmailRepository,
	profileRepo repository.StyleProfileRepository,
	cfg *config.Config,
) StyleUsecase {
	return &styleUsecase{
		pairRepo:     pairRepo,
		analysisRepo: analysisRepo,
		sampleRepo:   sampleRepo,
		profileRepo:  profileRepo,
		config:       cfg,
	}
}

func (u *styleUsecase) SetStylist(svc ai.Stylist) {
	u.stylist = svc
}

func (u *styleUsecase) SetSampleIndexer(indexer SampleIndexer) {
	u.indexer = indexer
}

// SubmitEmailPairs persists the submitted pairs, derives a style analysis and
// generates a batch of synthetic samples per category. Categories are
// generated independently: one failing category does not roll back the rest.
func (u *styleUsecase) SubmitEmailPairs(ctx context.Context, userID string, pairs []styledto.EmailPairInput) (*styledto.SubmitEmailPairsResult, error) {
	if len(pairs) < u.config.MinEmailPairs {
		return nil, fmt.Errorf("%w: at least %d email pairs are required", styledomain.ErrValidation, u.config.MinEmailPairs)
	}
	for i, pair := range pairs {
		if strings.TrimSpace(pair.Question) == "" {
			return nil, fmt.Errorf("%w: email pair %d is missing a question", styledomain.ErrValidation, i+1)
		}
		if strings.TrimSpace(pair.Answer) == "" {
			return nil, fmt.Errorf("%w: email pair %d is missing an answer", styledomain.ErrValidation, i+1)
		}
	}
	if u.stylist == nil {
		return nil, errors.New("AI service not configured")
	}

	records := make([]*styledomain.EmailPair, 0, len(pairs))
	samples := make([]ai.EmailPairSample, 0, len(pairs))
	for _, pair := range pairs {
		records = append(records, &styledomain.EmailPair{
			UserID:   userID,
			Question: pair.Question,
			Answer:   pair.Answer,
		})
		samples = append(samples, ai.EmailPairSample{Question: pair.Question, Answer: pair.Answer})
	}
	if err := u.pairRepo.CreateBatch(records); err != nil {
		return nil, err
	}

	result, err := u.stylist.AnalyzeWritingStyle(ctx, samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", styledomain.ErrAnalysisFailed, err)
	}

	analysis := &styledomain.StyleAnalysis{
		UserID:  userID,
		Summary: result.OverallStyleSummary,
	}
	for _, cat := range result.Categories {
		analysis.Categories = append(analysis.Categories, styledomain.StyleCategory{
			Name:               cat.Name,
			Description:        cat.Description,
			KeyCharacteristics: cat.KeyCharacteristics,
		})
	}
	if err := u.analysisRepo.Create(analysis); err != nil {
		return nil, err
	}

	byCategory := make(map[string][]*styledomain.SyntheticEmail, len(result.Categories))
	var failed []string
	for _, cat := range result.Categories {
		contents, genErr := u.stylist.GenerateCategorySamples(ctx, result.OverallStyleSummary, cat, samples, u.config.SamplesPerCategory)
		if genErr != nil {
			log.Printf("[Style] sample generation failed for category %q: %v", cat.Name, genErr)
			failed = append(failed, cat.Name)
			continue
		}

		batch := make([]*styledomain.SyntheticEmail, 0, len(contents))
		for _, content := range contents {
			batch = append(batch, &styledomain.SyntheticEmail{
				UserID:   userID,
				Category: cat.Name,
				Content:  content,
				Approved: false,
			})
		}
		if err := u.sampleRepo.CreateBatch(batch); err != nil {
			return nil, err
		}
		byCategory[cat.Name] = batch
	}

	if len(byCategory) == 0 {
		return nil, fmt.Errorf("%w: no category could be generated", styledomain.ErrGenerationFailed)
	}

	return &styledto.SubmitEmailPairsResult{
		StyleAnalysis:    analysis,
		SyntheticEmails:  byCategory,
		FailedCategories: failed,
	}, nil
}

// SubmitFeedback runs the per-sample review state machine:
// pending -> approved (terminal), or pending -> rejected, which spawns a
// regenerated successor pointing back at the rejected sample.
func (u *styleUsecase) SubmitFeedback(ctx context.Context, userID string, req *styledto.FeedbackRequest) (*styledto.FeedbackResult, error) {
	sample, err := u.sampleRepo.FindByID(req.EmailID)
	if err != nil {
		return nil, err
	}
	if sample == nil || sample.UserID != userID {
		return nil, styledomain.ErrEmailNotFound
	}

	if req.IsApproved != nil && *req.IsApproved {
		return u.approveSample(sample, req)
	}
	return u.rejectSample(ctx, sample, req)
}

func (u *styleUsecase) approveSample(sample *styledomain.SyntheticEmail, req *styledto.FeedbackRequest) (*styledto.FeedbackResult, error) {
	// Re-approving an approved sample is an idempotent no-op
	if sample.Approved {
		return &styledto.FeedbackResult{Success: true, UpdatedSample: sample}, nil
	}
	if sample.Rating != nil {
		// Feedback was already recorded: the sample is rejected and superseded
		return nil, styledomain.ErrInvalidStateTransition
	}

	var feedback *string
	if req.Comments != "" {
		feedback = &req.Comments
	}
	ok, err := u.sampleRepo.Approve(sample.ID, req.Rating, feedback)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race: reload and classify
		current, err := u.sampleRepo.FindByID(sample.ID)
		if err != nil {
			return nil, err
		}
		if current != nil && current.Approved {
			return &styledto.FeedbackResult{Success: true, UpdatedSample: current}, nil
		}
		return nil, styledomain.ErrInvalidStateTransition
	}

	sample.Approved = true
	sample.Rating = req.Rating
	sample.Feedback = feedback
	return &styledto.FeedbackResult{Success: true, UpdatedSample: sample}, nil
}

func (u *styleUsecase) rejectSample(ctx context.Context, sample *styledomain.SyntheticEmail, req *styledto.FeedbackRequest) (*styledto.FeedbackResult, error) {
	// Rejection requires both a rating and an explanation, checked before any
	// model call
	if req.Rating == nil {
		return nil, fmt.Errorf("%w: rating is required when rejecting a sample", styledomain.ErrValidation)
	}
	if *req.Rating < 1 || *req.Rating > 100 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 100", styledomain.ErrValidation)
	}
	if strings.TrimSpace(req.Comments) == "" {
		return nil, fmt.Errorf("%w: comments are required when rejecting a sample", styledomain.ErrValidation)
	}

	if sample.Approved {
		return nil, styledomain.ErrInvalidStateTransition
	}
	if sample.Rating != nil {
		return nil, styledomain.ErrInvalidStateTransition
	}
	if u.stylist == nil {
		return nil, errors.New("AI service not configured")
	}

	improved, err := u.stylist.RegenerateEmail(ctx, sample.Content, sample.Category, *req.Rating, req.Comments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", styledomain.ErrGenerationFailed, err)
	}

	// The conditional update is the commit point: exactly one rejection wins,
	// so concurrent retries cannot spawn two successors.
	ok, err := u.sampleRepo.MarkRejected(sample.ID, *req.Rating, req.Comments)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, styledomain.ErrInvalidStateTransition
	}

	successor := &styledomain.SyntheticEmail{
		UserID:          sample.UserID,
		Category:        sample.Category,
		Content:         improved,
		Approved:        false,
		OriginalEmailID: &sample.ID,
	}
	if err := u.sampleRepo.Create(successor); err != nil {
		return nil, err
	}

	return &styledto.FeedbackResult{Success: true, NewSample: successor}, nil
}

// SaveStyleProfile freezes the current approved set as the user's style
// profile. The profile row is only a marker: composition always reads the
// live approved set, so repeating this after approving more samples simply
// widens the profile.
func (u *styleUsecase) SaveStyleProfile(ctx context.Context, userID string) (*styledomain.StyleProfile, error) {
	approved, err := u.sampleRepo.FindApprovedByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(approved) == 0 {
		return nil, styledomain.ErrNoApprovedSamples
	}

	profile := &styledomain.StyleProfile{
		UserID:        userID,
		ApprovedCount: len(approved),
		FrozenAt:      time.Now(),
	}
	if err := u.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	// Best effort: index approved samples for topic-similarity retrieval
	if u.indexer != nil {
		for _, sample := range approved {
			if err := u.indexer.UpsertSampleEmbedding(ctx, sample.ID, userID, sample.Category, sample.Content); err != nil {
				log.Printf("[Style] failed to index sample %s: %v", sample.ID, err)
			}
		}
	}

	return profile, nil
}

func (u *styleUsecase) GetUserData(userID string) (*styledto.UserDataResponse, error) {
	pairs, err := u.pairRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	analysis, err := u.analysisRepo.FindLatestByUser(userID)
	if err != nil {
		return nil, err
	}

	samples, err := u.sampleRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	return &styledto.UserDataResponse{
		EmailPairs:           pairs,
		StyleAnalysis:        analysis,
		SyntheticEmails:      buildSampleViews(samples, ""),
		HasCompletedAnalysis: analysis != nil,
		HasStyleProfile:      profile != nil,
	}, nil
}

func (u *styleUsecase) GetStyleProfile(userID string) (*styledomain.StyleProfile, error) {
	profile, err := u.profileRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, styledomain.ErrNoStyleProfile
	}
	return profile, nil
}

func (u *styleUsecase) GetStyleAnalysis(userID string) (*styledomain.StyleAnalysis, error) {
	return u.analysisRepo.FindLatestByUser(userID)
}

func (u *styleUsecase) GetSyntheticEmails(userID, query string) (map[string][]*styledto.SampleView, error) {
	samples, err := u.sampleRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	views := buildSampleViews(samples, query)
	grouped := make(map[string][]*styledto.SampleView)
	for _, view := range views {
		grouped[view.Category] = append(grouped[view.Category], view)
	}
	return grouped, nil
}

// buildSampleViews annotates each sample with the id of its regenerated
// successor (if any) and applies an optional fuzzy content filter.
func buildSampleViews(samples []*styledomain.SyntheticEmail, query string) []*styledto.SampleView {
	successorOf := make(map[string]string, len(samples))
	for _, s := range samples {
		if s.OriginalEmailID != nil {
			successorOf[*s.OriginalEmailID] = s.ID
		}
	}

	views := make([]*styledto.SampleView, 0, len(samples))
	for _, s := range samples {
		if query != "" && !fuzzy.Match(query, s.Content, 2) {
			continue
		}
		views = append(views, &styledto.SampleView{
			SyntheticEmail: s,
			SupersededBy:   successorOf[s.ID],
		})
	}
	return views
}
