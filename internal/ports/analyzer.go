package ports

import (
	"context"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// Analyzer defines the contract for remote scam-analysis backends.
//
// Implementations may fail (network, quota, malformed output); callers are
// expected to fall back to the local rule engine, which cannot.
type Analyzer interface {
	// Analyze submits the message for analysis and returns the verdict.
	Analyze(ctx context.Context, msg domain.Message) (*domain.ScamAnalysisResult, error)

	// Name identifies the backend for logging.
	Name() string
}
