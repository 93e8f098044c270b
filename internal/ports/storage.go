package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// Storage defines the contract for persisting and querying scam cases
type Storage interface {
	// Case operations
	CreateCase(ctx context.Context, c *domain.ScamCase) error
	GetCase(ctx context.Context, id uuid.UUID) (*domain.ScamCase, error)
	GetCaseByRef(ctx context.Context, caseRef string) (*domain.ScamCase, error)
	ListCasesByStatus(ctx context.Context, status string, limit int) ([]domain.ScamCase, error)
	UpdateCaseStatus(ctx context.Context, id uuid.UUID, status, assignedTo string) error

	// ListHighRiskCases returns the most recent high/critical cases for
	// investigator triage.
	ListHighRiskCases(ctx context.Context, limit int) ([]domain.ScamCase, error)

	// Lifecycle
	Close() error
}
