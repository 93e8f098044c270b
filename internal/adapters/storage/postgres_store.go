package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// PostgresStore implements ports.Storage for PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL storage instance
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	// In production, should be set based on workload
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InitSchema creates database tables if they don't exist
// In production, use proper migration tools
func (s *PostgresStore) InitSchema() error {
	schema := `
	-- ============================================================================
	-- SCAM_CASES TABLE
	-- ============================================================================
	-- One row per citizen-submitted report. The analysis verdict is embedded
	-- as columns rather than a separate table: a case is always read together
	-- with its analysis, and the verdict is immutable once filed.
	--
	-- scam_patterns / action_steps as JSONB string arrays: every pattern list
	-- is read whole; there is no query that filters on an individual pattern.
	-- Production: a dedicated patterns table would enable per-pattern stats
	-- ("most common indicators this month") and index-backed filtering.
	CREATE TABLE IF NOT EXISTS scam_cases (
		id UUID PRIMARY KEY,
		case_ref VARCHAR(20) NOT NULL UNIQUE,
		submitted_by VARCHAR(100) NOT NULL,
		contact_email VARCHAR(254),
		contact_phone VARCHAR(20),
		sender_email VARCHAR(254),
		message_type VARCHAR(20) NOT NULL CHECK (message_type IN ('whatsapp', 'email', 'call_transcript', 'payment_request', 'sms', 'other')),
		original_message TEXT NOT NULL,
		is_scam BOOLEAN NOT NULL,
		confidence INT NOT NULL CHECK (confidence BETWEEN 0 AND 100),
		fraud_category VARCHAR(80) NOT NULL,
		risk_level VARCHAR(10) NOT NULL CHECK (risk_level IN ('low', 'medium', 'high', 'critical')),
		financial_risk TEXT,
		scam_patterns JSONB,
		explanation TEXT,
		suggested_reply TEXT,
		action_steps JSONB,
		status VARCHAR(25) NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'under_investigation', 'resolved', 'dismissed')),
		assigned_to VARCHAR(100),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	-- Review queue: "all open cases, newest first"
	CREATE INDEX IF NOT EXISTS idx_cases_status ON scam_cases(status, created_at DESC);
	-- Backs ListHighRiskCases for investigator triage
	CREATE INDEX IF NOT EXISTS idx_cases_risk ON scam_cases(risk_level, confidence DESC, created_at DESC);
	-- Investigation view: "all reports about this sender"
	CREATE INDEX IF NOT EXISTS idx_cases_sender ON scam_cases(sender_email);
	`

	_, err := s.db.Exec(schema)
	return err
}

const caseColumns = `
	id, case_ref, submitted_by, contact_email, contact_phone, sender_email,
	message_type, original_message, is_scam, confidence, fraud_category,
	risk_level, financial_risk, scam_patterns, explanation, suggested_reply,
	action_steps, status, assigned_to, created_at, updated_at
`

// CreateCase inserts a new scam case with its embedded analysis
func (s *PostgresStore) CreateCase(ctx context.Context, c *domain.ScamCase) error {
	patternsJSON, err := json.Marshal(c.Analysis.ScamPatterns)
	if err != nil {
		return fmt.Errorf("failed to marshal scam patterns: %w", err)
	}

	stepsJSON, err := json.Marshal(c.Analysis.ActionSteps)
	if err != nil {
		return fmt.Errorf("failed to marshal action steps: %w", err)
	}

	query := `
		INSERT INTO scam_cases (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	_, err = s.db.ExecContext(ctx, query,
		c.ID, c.CaseRef, c.SubmittedBy, c.ContactEmail, c.ContactPhone, c.SenderEmail,
		c.MessageType, c.OriginalMessage, c.Analysis.IsScam, c.Analysis.Confidence,
		c.Analysis.FraudCategory, c.Analysis.RiskLevel, c.Analysis.FinancialRisk,
		patternsJSON, c.Analysis.Explanation, c.Analysis.SuggestedReply, stepsJSON,
		c.Status, c.AssignedTo, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// GetCase retrieves a case by ID
func (s *PostgresStore) GetCase(ctx context.Context, id uuid.UUID) (*domain.ScamCase, error) {
	query := `SELECT ` + caseColumns + ` FROM scam_cases WHERE id = $1`
	return s.scanCase(s.db.QueryRowContext(ctx, query, id))
}

// GetCaseByRef retrieves a case by its public reference code
func (s *PostgresStore) GetCaseByRef(ctx context.Context, caseRef string) (*domain.ScamCase, error) {
	query := `SELECT ` + caseColumns + ` FROM scam_cases WHERE case_ref = $1`
	return s.scanCase(s.db.QueryRowContext(ctx, query, caseRef))
}

// ListCasesByStatus retrieves cases in a given review status, newest first
func (s *PostgresStore) ListCasesByStatus(ctx context.Context, status string, limit int) ([]domain.ScamCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM scam_cases
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collectCases(rows)
}

// UpdateCaseStatus moves a case through the review workflow
func (s *PostgresStore) UpdateCaseStatus(ctx context.Context, id uuid.UUID, status, assignedTo string) error {
	query := `
		UPDATE scam_cases
		SET status = $2, assigned_to = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id, status, assignedTo)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("case %s not found", id)
	}
	return nil
}

// ListHighRiskCases retrieves the most severe recent cases
func (s *PostgresStore) ListHighRiskCases(ctx context.Context, limit int) ([]domain.ScamCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM scam_cases
		WHERE risk_level IN ('high', 'critical')
		ORDER BY confidence DESC, created_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collectCases(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *PostgresStore) scanCase(row rowScanner) (*domain.ScamCase, error) {
	c := &domain.ScamCase{}
	var patternsJSON, stepsJSON []byte

	err := row.Scan(
		&c.ID, &c.CaseRef, &c.SubmittedBy, &c.ContactEmail, &c.ContactPhone, &c.SenderEmail,
		&c.MessageType, &c.OriginalMessage, &c.Analysis.IsScam, &c.Analysis.Confidence,
		&c.Analysis.FraudCategory, &c.Analysis.RiskLevel, &c.Analysis.FinancialRisk,
		&patternsJSON, &c.Analysis.Explanation, &c.Analysis.SuggestedReply, &stepsJSON,
		&c.Status, &c.AssignedTo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(patternsJSON, &c.Analysis.ScamPatterns)
	json.Unmarshal(stepsJSON, &c.Analysis.ActionSteps)

	return c, nil
}

func (s *PostgresStore) collectCases(rows *sql.Rows) ([]domain.ScamCase, error) {
	cases := make([]domain.ScamCase, 0)
	for rows.Next() {
		c, err := s.scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *c)
	}
	return cases, rows.Err()
}
