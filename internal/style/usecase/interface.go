package usecase

import (
	"context"

	styledomain "stylemail-backend/internal/style/domain"
	styledto "stylemail-backend/internal/style/dto"
	"stylemail-backend/pkg/ai"
)

// SampleIndexer stores embeddings of approved samples so the composer can
// retrieve topic-relevant style examples. Implemented by the Chroma client.
type SampleIndexer interface {
	UpsertSampleEmbedding(ctx context.Context, sampleID, userID, category, content string) error
}

// StyleUsecase defines the style-profile feedback loop use cases
type StyleUsecase interface {
	SubmitEmailPairs(ctx context.Context, userID string, pairs []styledto.EmailPairInput) (*styledto.SubmitEmailPairsResult, error)
	SubmitFeedback(ctx context.Context, userID string, req *styledto.FeedbackRequest) (*styledto.FeedbackResult, error)
	SaveStyleProfile(ctx context.Context, userID string) (*styledomain.StyleProfile, error)
	GetStyleProfile(userID string) (*styledomain.StyleProfile, error)
	GetUserData(userID string) (*styledto.UserDataResponse, error)
	GetStyleAnalysis(userID string) (*styledomain.StyleAnalysis, error)
	GetSyntheticEmails(userID, query string) (map[string][]*styledto.SampleView, error)

	SetStylist(svc ai.Stylist)
	SetSampleIndexer(indexer SampleIndexer)
}
