package usecase

import (
	"context"
	"fmt"
	"testing"

	composedomain "stylemail-backend/internal/compose/domain"
	composedto "stylemail-backend/internal/compose/dto"
	styledomain "stylemail-backend/internal/style/domain"
	"stylemail-backend/pkg/ai"
	"stylemail-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

type fakeGeneratedRepo struct {
	emails []*composedomain.GeneratedEmail
}

func (r *fakeGeneratedRepo) Create(e *composedomain.GeneratedEmail) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	r.emails = append(r.emails, e)
	return nil
}

func (r *fakeGeneratedRepo) FindByUser(userID string) ([]*composedomain.GeneratedEmail, error) {
	var out []*composedomain.GeneratedEmail
	for i := len(r.emails) - 1; i >= 0; i-- {
		if r.emails[i].UserID == userID {
			out = append(out, r.emails[i])
		}
	}
	return out, nil
}

type fakeSampleRepo struct {
	samples []*styledomain.SyntheticEmail
}

func (r *fakeSampleRepo) Create(e *styledomain.SyntheticEmail) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	r.samples = append(r.samples, e)
	return nil
}

func (r *fakeSampleRepo) CreateBatch(emails []*styledomain.SyntheticEmail) error {
	for _, e := range emails {
		if err := r.Create(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeSampleRepo) FindByID(id string) (*styledomain.SyntheticEmail, error) {
	for _, e := range r.samples {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeSampleRepo) FindByIDs(ids []string) ([]*styledomain.SyntheticEmail, error) {
	var out []*styledomain.SyntheticEmail
	for _, id := range ids {
		for _, e := range r.samples {
			if e.ID == id {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (r *fakeSampleRepo) FindByUser(userID string) ([]*styledomain.SyntheticEmail, error) {
	var out []*styledomain.SyntheticEmail
	for _, e := range r.samples {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeSampleRepo) FindApprovedByUser(userID string) ([]*styledomain.SyntheticEmail, error) {
	// newest first, like the real repository
	var out []*styledomain.SyntheticEmail
	for i := len(r.samples) - 1; i >= 0; i-- {
		if r.samples[i].UserID == userID && r.samples[i].Approved {
			out = append(out, r.samples[i])
		}
	}
	return out, nil
}

func (r *fakeSampleRepo) Approve(id string, rating *int, feedback *string) (bool, error) {
	return false, nil
}

func (r *fakeSampleRepo) MarkRejected(id string, rating int, feedback string) (bool, error) {
	return false, nil
}

type fakeAnalysisRepo struct {
	latest *styledomain.StyleAnalysis
}

func (r *fakeAnalysisRepo) Create(a *styledomain.StyleAnalysis) error {
	r.latest = a
	return nil
}

func (r *fakeAnalysisRepo) FindLatestByUser(userID string) (*styledomain.StyleAnalysis, error) {
	if r.latest != nil && r.latest.UserID == userID {
		return r.latest, nil
	}
	return nil, nil
}

type fakeProfileRepo struct {
	profiles map[string]*styledomain.StyleProfile
}

func (r *fakeProfileRepo) Upsert(p *styledomain.StyleProfile) error {
	if r.profiles == nil {
		r.profiles = make(map[string]*styledomain.StyleProfile)
	}
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) FindByUser(userID string) (*styledomain.StyleProfile, error) {
	if p, ok := r.profiles[userID]; ok {
		return p, nil
	}
	return nil, nil
}

type fakePairRepo struct {
	pairs []*styledomain.EmailPair
}

func (r *fakePairRepo) CreateBatch(pairs []*styledomain.EmailPair) error {
	r.pairs = append(r.pairs, pairs...)
	return nil
}

func (r *fakePairRepo) FindByUser(userID string) ([]*styledomain.EmailPair, error) {
	var out []*styledomain.EmailPair
	for _, p := range r.pairs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeComposer struct {
	calls     int
	lastInput ai.ComposeInput
	err       error
}

func (s *fakeComposer) AnalyzeWritingStyle(ctx context.Context, pairs []ai.EmailPairSample) (*ai.StyleAnalysisResult, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *fakeComposer) GenerateCategorySamples(ctx context.Context, summary string, category ai.StyleCategory, examples []ai.EmailPairSample, count int) ([]string, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *fakeComposer) RegenerateEmail(ctx context.Context, original, category string, rating int, feedback string) (string, error) {
	return "", fmt.Errorf("not implemented")
}

func (s *fakeComposer) ComposeEmail(ctx context.Context, input ai.ComposeInput) (string, error) {
	s.calls++
	s.lastInput = input
	if s.err != nil {
		return "", s.err
	}
	return "Subject: drafted\n\nHello.", nil
}

type fakeFinder struct {
	ids []string
	err error
}

func (f *fakeFinder) FindStyleExamples(ctx context.Context, userID, topic string, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ids, nil
}

// ---- harness ----

type composeFixture struct {
	uc       ComposeUsecase
	emails   *fakeGeneratedRepo
	samples  *fakeSampleRepo
	analyses *fakeAnalysisRepo
	profiles *fakeProfileRepo
	pairs    *fakePairRepo
	composer *fakeComposer
	cfg      *config.Config
}

func newComposeFixture() *composeFixture {
	f := &composeFixture{
		emails:   &fakeGeneratedRepo{},
		samples:  &fakeSampleRepo{},
		analyses: &fakeAnalysisRepo{},
		profiles: &fakeProfileRepo{},
		pairs:    &fakePairRepo{},
		composer: &fakeComposer{},
		cfg:      &config.Config{},
	}
	f.uc = NewComposeUsecase(f.emails, f.samples, f.analyses, f.profiles, f.pairs, f.cfg)
	f.uc.SetStylist(f.composer)
	return f
}

func validRequest() *composedto.ComposeRequest {
	return &composedto.ComposeRequest{
		Recipient: "dana@example.com",
		Topic:     "budget review",
		KeyPoints: []string{"numbers are final", "meeting moved to Thursday"},
	}
}

func approvedSample(f *composeFixture, userID, content string) *styledomain.SyntheticEmail {
	s := &styledomain.SyntheticEmail{UserID: userID, Category: "Formal", Content: content, Approved: true}
	_ = f.samples.Create(s)
	return s
}

// ---- tests ----

func TestGenerateEmail_ValidatesBeforeModelCall(t *testing.T) {
	f := newComposeFixture()

	cases := []*composedto.ComposeRequest{
		{Recipient: " ", Topic: "t", KeyPoints: []string{"k"}},
		{Recipient: "r", Topic: "", KeyPoints: []string{"k"}},
		{Recipient: "r", Topic: "t", KeyPoints: nil},
		{Recipient: "r", Topic: "t", KeyPoints: []string{"  "}},
	}
	for _, req := range cases {
		_, err := f.uc.GenerateEmail(context.Background(), "u1", req)
		require.ErrorIs(t, err, composedomain.ErrValidation)
	}
	assert.Zero(t, f.composer.calls, "no model call on invalid input")
	assert.Empty(t, f.emails.emails)
}

func TestGenerateEmail_RequiresProfileWhenConfigured(t *testing.T) {
	f := newComposeFixture()
	f.cfg.ComposeRequireProfile = true

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.ErrorIs(t, err, composedomain.ErrNoStyleProfile)
	assert.Zero(t, f.composer.calls)
}

func TestGenerateEmail_Success(t *testing.T) {
	f := newComposeFixture()
	approvedSample(f, "u1", "Dear all, the numbers look good.")
	f.analyses.latest = &styledomain.StyleAnalysis{UserID: "u1", Summary: "Direct and warm."}

	email, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Subject: drafted\n\nHello.", email.Content)
	assert.Equal(t, "dana@example.com", email.Recipient)
	assert.Len(t, f.emails.emails, 1, "composition is persisted")

	assert.Equal(t, "Direct and warm.", f.composer.lastInput.StyleSummary)
	assert.Equal(t, []string{"Dear all, the numbers look good."}, f.composer.lastInput.Examples)
}

func TestGenerateEmail_DefaultSummaryWithoutAnalysis(t *testing.T) {
	f := newComposeFixture()
	approvedSample(f, "u1", "sample")

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, defaultStyleSummary, f.composer.lastInput.StyleSummary)
}

func TestGenerateEmail_FallsBackToRawAnswers(t *testing.T) {
	f := newComposeFixture()
	_ = f.pairs.CreateBatch([]*styledomain.EmailPair{
		{UserID: "u1", Question: "q1", Answer: "a1"},
		{UserID: "u1", Question: "q2", Answer: "a2"},
	})

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a1", "a2"}, f.composer.lastInput.Examples)
}

func TestGenerateEmail_UsesFinderOrdering(t *testing.T) {
	f := newComposeFixture()
	s1 := approvedSample(f, "u1", "first")
	s2 := approvedSample(f, "u1", "second")
	f.uc.SetExampleFinder(&fakeFinder{ids: []string{s2.ID, s1.ID}})

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, f.composer.lastInput.Examples, "topic-nearest first")
}

func TestGenerateEmail_FinderFailureFallsBackToRecency(t *testing.T) {
	f := newComposeFixture()
	approvedSample(f, "u1", "older")
	approvedSample(f, "u1", "newer")
	f.uc.SetExampleFinder(&fakeFinder{err: fmt.Errorf("chroma down")})

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"newer", "older"}, f.composer.lastInput.Examples)
}

func TestGenerateEmail_StaleFinderIDsAreIgnored(t *testing.T) {
	f := newComposeFixture()
	s := approvedSample(f, "u1", "approved")
	f.uc.SetExampleFinder(&fakeFinder{ids: []string{"gone", s.ID}})

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"approved"}, f.composer.lastInput.Examples)
}

func TestGenerateEmail_ModelFailure(t *testing.T) {
	f := newComposeFixture()
	approvedSample(f, "u1", "sample")
	f.composer.err = fmt.Errorf("quota exceeded")

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())

	require.ErrorIs(t, err, composedomain.ErrCompositionFailed)
	assert.Empty(t, f.emails.emails, "nothing persisted when the model fails")
}

func TestListGeneratedEmails(t *testing.T) {
	f := newComposeFixture()
	approvedSample(f, "u1", "sample")

	_, err := f.uc.GenerateEmail(context.Background(), "u1", validRequest())
	require.NoError(t, err)

	history, err := f.uc.ListGeneratedEmails("u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "budget review", history[0].Topic)

	other, err := f.uc.ListGeneratedEmails("u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
