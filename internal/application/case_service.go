package application

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/rrk-sde/ScamShieldAi/internal/domain/detection"
	"github.com/rrk-sde/ScamShieldAi/internal/ports"
)

// CaseService orchestrates scam analysis and case filing.
//
// Analysis strategy: remote analyzers are tried in configured priority order;
// any failure falls back to the next one and finally to the local rule
// engine, which is total and cannot fail. Remote failures are logged and
// never surfaced to the caller, so Analyze itself always succeeds.
type CaseService struct {
	engine    *detection.Engine
	analyzers []ports.Analyzer
	storage   ports.Storage
	logger    *zap.Logger
}

// SubmitCaseInput carries a citizen's report into the service.
type SubmitCaseInput struct {
	Message      string
	MessageType  domain.MessageType
	SubmittedBy  string
	ContactEmail string
	ContactPhone string
	SenderEmail  string
}

// NewCaseService creates a new case service with dependency injection.
// Analyzers are optional; with none configured every analysis uses the local
// engine.
func NewCaseService(
	engine *detection.Engine,
	analyzers []ports.Analyzer,
	storage ports.Storage,
	logger *zap.Logger,
) *CaseService {
	return &CaseService{
		engine:    engine,
		analyzers: analyzers,
		storage:   storage,
		logger:    logger,
	}
}

// Analyze runs the message through the analyzer chain and returns a verdict.
// It never fails: the local engine is the guaranteed last resort.
func (s *CaseService) Analyze(ctx context.Context, msg domain.Message) domain.ScamAnalysisResult {
	for _, analyzer := range s.analyzers {
		result, err := analyzer.Analyze(ctx, msg)
		if err != nil {
			s.logger.Warn("remote analyzer failed, falling back",
				zap.String("analyzer", analyzer.Name()),
				zap.Error(err),
			)
			continue
		}
		s.logger.Debug("remote analysis succeeded",
			zap.String("analyzer", analyzer.Name()),
			zap.Int("confidence", result.Confidence),
		)
		return *result
	}

	return s.engine.Analyze(msg)
}

// SubmitCase analyzes a reported message and files it as a case. Analysis
// cannot fail; a storage failure is returned to the caller so the citizen
// can retry without losing the report.
func (s *CaseService) SubmitCase(ctx context.Context, input SubmitCaseInput) (*domain.ScamCase, error) {
	if strings.TrimSpace(input.Message) == "" || strings.TrimSpace(input.SubmittedBy) == "" {
		return nil, fmt.Errorf("message and submitter name are required")
	}

	analysis := s.Analyze(ctx, domain.Message{
		Content:     input.Message,
		Type:        input.MessageType,
		SenderEmail: input.SenderEmail,
	})

	now := time.Now()
	scamCase := &domain.ScamCase{
		ID:              uuid.New(),
		CaseRef:         generateCaseRef(now),
		SubmittedBy:     input.SubmittedBy,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		SenderEmail:     input.SenderEmail,
		MessageType:     input.MessageType,
		OriginalMessage: input.Message,
		Analysis:        analysis,
		Status:          domain.CaseStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.storage.CreateCase(ctx, scamCase); err != nil {
		return nil, fmt.Errorf("failed to store case %s: %w", scamCase.CaseRef, err)
	}

	if analysis.RiskLevel == "high" || analysis.RiskLevel == "critical" {
		s.logger.Warn("high-risk case filed",
			zap.String("case_ref", scamCase.CaseRef),
			zap.String("category", analysis.FraudCategory),
			zap.String("risk_level", analysis.RiskLevel),
			zap.Int("confidence", analysis.Confidence),
			zap.Int("patterns", len(analysis.ScamPatterns)),
		)
	}

	return scamCase, nil
}

// GetCase retrieves a case by its public reference code.
func (s *CaseService) GetCase(ctx context.Context, caseRef string) (*domain.ScamCase, error) {
	return s.storage.GetCaseByRef(ctx, caseRef)
}

// ListOpenCases returns the review queue, newest first.
func (s *CaseService) ListOpenCases(ctx context.Context, limit int) ([]domain.ScamCase, error) {
	return s.storage.ListCasesByStatus(ctx, domain.CaseStatusOpen, limit)
}

// HighRiskSummary returns the most severe recent cases for triage.
func (s *CaseService) HighRiskSummary(ctx context.Context, limit int) ([]domain.ScamCase, error) {
	return s.storage.ListHighRiskCases(ctx, limit)
}

const caseRefAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateCaseRef produces a public reference like "SC-2026-4F7K2A": the
// submission year plus six upper-cased base-36 characters. Uniqueness is
// enforced by the database constraint, not here.
func generateCaseRef(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = caseRefAlphabet[rand.Intn(len(caseRefAlphabet))]
	}
	return fmt.Sprintf("SC-%d-%s", now.Year(), suffix)
}
