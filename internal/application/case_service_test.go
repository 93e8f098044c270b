package application

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/rrk-sde/ScamShieldAi/internal/domain/detection"
	"github.com/rrk-sde/ScamShieldAi/internal/ports"
)

type fakeAnalyzer struct {
	name   string
	result *domain.ScamAnalysisResult
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, msg domain.Message) (*domain.ScamAnalysisResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAnalyzer) Name() string { return f.name }

type fakeStorage struct {
	cases     []*domain.ScamCase
	createErr error
}

func (f *fakeStorage) CreateCase(ctx context.Context, c *domain.ScamCase) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.cases = append(f.cases, c)
	return nil
}

func (f *fakeStorage) GetCase(ctx context.Context, id uuid.UUID) (*domain.ScamCase, error) {
	for _, c := range f.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) GetCaseByRef(ctx context.Context, caseRef string) (*domain.ScamCase, error) {
	for _, c := range f.cases {
		if c.CaseRef == caseRef {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) ListCasesByStatus(ctx context.Context, status string, limit int) ([]domain.ScamCase, error) {
	var out []domain.ScamCase
	for _, c := range f.cases {
		if c.Status == status && len(out) < limit {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateCaseStatus(ctx context.Context, id uuid.UUID, status, assignedTo string) error {
	return nil
}

func (f *fakeStorage) ListHighRiskCases(ctx context.Context, limit int) ([]domain.ScamCase, error) {
	var out []domain.ScamCase
	for _, c := range f.cases {
		if (c.Analysis.RiskLevel == "high" || c.Analysis.RiskLevel == "critical") && len(out) < limit {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStorage) Close() error { return nil }

func remoteVerdict() *domain.ScamAnalysisResult {
	return &domain.ScamAnalysisResult{
		IsScam:        true,
		Confidence:    88,
		FraudCategory: "Phishing",
		RiskLevel:     "critical",
		Explanation:   "Remote verdict.",
	}
}

func newTestService(analyzers []ports.Analyzer, store *fakeStorage) *CaseService {
	return NewCaseService(detection.NewEngine(), analyzers, store, zap.NewNop())
}

func TestCaseService_Analyze_UsesFirstHealthyAnalyzer(t *testing.T) {
	broken := &fakeAnalyzer{name: "gemini", err: errors.New("quota exceeded")}
	healthy := &fakeAnalyzer{name: "openai", result: remoteVerdict()}
	service := newTestService([]ports.Analyzer{broken, healthy}, &fakeStorage{})

	result := service.Analyze(context.Background(), domain.Message{Content: "hi", Type: domain.MessageTypeSMS})

	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, healthy.calls)
	assert.Equal(t, "Phishing", result.FraudCategory)
	assert.Equal(t, 88, result.Confidence)
}

func TestCaseService_Analyze_FallsBackToLocalEngine(t *testing.T) {
	broken := &fakeAnalyzer{name: "gemini", err: errors.New("network down")}
	service := newTestService([]ports.Analyzer{broken}, &fakeStorage{})

	result := service.Analyze(context.Background(), domain.Message{
		Content: "This is CBI. You are under digital arrest for money laundering. Pay ₹50,000 via UPI immediately.",
		Type:    domain.MessageTypeWhatsApp,
	})

	// The local engine produced the verdict.
	assert.True(t, result.IsScam)
	assert.Equal(t, 100, result.Confidence)
	assert.Equal(t, "Digital Arrest Scam", result.FraudCategory)
}

func TestCaseService_Analyze_NoAnalyzersConfigured(t *testing.T) {
	service := newTestService(nil, &fakeStorage{})

	result := service.Analyze(context.Background(), domain.Message{Content: "hi", Type: domain.MessageTypeOther})

	assert.False(t, result.IsScam)
	assert.Equal(t, 0, result.Confidence)
}

func TestCaseService_SubmitCase(t *testing.T) {
	store := &fakeStorage{}
	service := newTestService(nil, store)

	scamCase, err := service.SubmitCase(context.Background(), SubmitCaseInput{
		Message:     "You are under digital arrest. Pay ₹50,000 via UPI immediately or face jail. This is CBI.",
		MessageType: domain.MessageTypeWhatsApp,
		SubmittedBy: "Asha Verma",
		SenderEmail: "officer@cbi-helpdesk.xyz",
	})
	require.NoError(t, err)
	require.Len(t, store.cases, 1)

	assert.Regexp(t, regexp.MustCompile(`^SC-\d{4}-[0-9A-Z]{6}$`), scamCase.CaseRef)
	assert.Equal(t, domain.CaseStatusOpen, scamCase.Status)
	assert.Equal(t, "Asha Verma", scamCase.SubmittedBy)
	assert.True(t, scamCase.Analysis.IsScam)
	assert.NotEqual(t, uuid.Nil, scamCase.ID)
	assert.WithinDuration(t, time.Now(), scamCase.CreatedAt, time.Minute)

	// The filed case is retrievable by its reference.
	got, err := service.GetCase(context.Background(), scamCase.CaseRef)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, scamCase.ID, got.ID)
}

func TestCaseService_SubmitCase_ValidatesInput(t *testing.T) {
	service := newTestService(nil, &fakeStorage{})

	_, err := service.SubmitCase(context.Background(), SubmitCaseInput{
		Message:     "   ",
		MessageType: domain.MessageTypeSMS,
		SubmittedBy: "Someone",
	})
	assert.Error(t, err)

	_, err = service.SubmitCase(context.Background(), SubmitCaseInput{
		Message:     "suspicious text",
		MessageType: domain.MessageTypeSMS,
	})
	assert.Error(t, err)
}

func TestCaseService_SubmitCase_StorageFailureSurfaces(t *testing.T) {
	store := &fakeStorage{createErr: errors.New("connection refused")}
	service := newTestService(nil, store)

	_, err := service.SubmitCase(context.Background(), SubmitCaseInput{
		Message:     "share your otp now",
		MessageType: domain.MessageTypeSMS,
		SubmittedBy: "Someone",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerateCaseRef(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	ref := generateCaseRef(now)
	assert.Regexp(t, regexp.MustCompile(`^SC-2026-[0-9A-Z]{6}$`), ref)
}
