package usecase

import (
	"context"

	composedomain "stylemail-backend/internal/compose/domain"
	composedto "stylemail-backend/internal/compose/dto"
	"stylemail-backend/pkg/ai"
)

// ExampleFinder retrieves IDs of the user's approved samples closest to a
// composition topic. Implemented by the Chroma client.
type ExampleFinder interface {
	FindStyleExamples(ctx context.Context, userID, topic string, limit int) ([]string, error)
}

// ComposeUsecase defines the on-demand email composition use cases
type ComposeUsecase interface {
	GenerateEmail(ctx context.Context, userID string, req *composedto.ComposeRequest) (*composedomain.GeneratedEmail, error)
	ListGeneratedEmails(userID string) ([]*composedomain.GeneratedEmail, error)

	SetStylist(svc ai.Stylist)
	SetExampleFinder(finder ExampleFinder)
}
