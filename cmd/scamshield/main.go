package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rrk-sde/ScamShieldAi/internal/adapters/providers"
	"github.com/rrk-sde/ScamShieldAi/internal/adapters/storage"
	"github.com/rrk-sde/ScamShieldAi/internal/application"
	"github.com/rrk-sde/ScamShieldAi/internal/config"
	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/rrk-sde/ScamShieldAi/internal/domain/detection"
	"github.com/rrk-sde/ScamShieldAi/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("starting scamshield analysis service", zap.String("environment", cfg.Environment))

	// Initialize storage adapter (driven port implementation)
	store, err := storage.NewPostgresStore(cfg.Database.DSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}
	logger.Info("database schema initialized")

	ctx := context.Background()

	// Remote analyzers are optional: with no API keys configured, every
	// analysis runs on the local rule engine.
	analyzers := buildAnalyzers(ctx, cfg, logger)

	// Initialize application service (dependency injection via constructor).
	// Outer layer (main) wires dependencies into the inner layers.
	service := application.NewCaseService(detection.NewEngine(), analyzers, store, logger)

	// Demo pipeline: file a few representative reports and show the triage
	// summary. In production, submissions arrive through the reporting API.
	reports := []application.SubmitCaseInput{
		{
			Message:     "This is CBI. You are under digital arrest for money laundering. Pay ₹50,000 via UPI immediately.",
			MessageType: domain.MessageTypeCallTranscript,
			SubmittedBy: "Demo Submitter",
		},
		{
			Message:     "Congratulations! You have won a lottery of ₹25,00,000. Pay processing fee of ₹5,000 to claim your prize.",
			MessageType: domain.MessageTypeSMS,
			SubmittedBy: "Demo Submitter",
		},
		{
			Message:     "We noticed a new sign-in to your account. If this was you, you don't need to do anything. This is an automated message.",
			MessageType: domain.MessageTypeEmail,
			SubmittedBy: "Demo Submitter",
			SenderEmail: "no-reply@google.com",
		},
	}

	for _, report := range reports {
		scamCase, err := service.SubmitCase(ctx, report)
		if err != nil {
			logger.Error("case submission failed", zap.Error(err))
			continue
		}
		logger.Info("case filed",
			zap.String("case_ref", scamCase.CaseRef),
			zap.String("category", scamCase.Analysis.FraudCategory),
			zap.String("risk_level", scamCase.Analysis.RiskLevel),
			zap.Int("confidence", scamCase.Analysis.Confidence),
			zap.Bool("is_scam", scamCase.Analysis.IsScam),
		)
	}

	highRisk, err := service.HighRiskSummary(ctx, 10)
	if err != nil {
		logger.Fatal("failed to fetch high-risk cases", zap.Error(err))
	}
	for i, c := range highRisk {
		logger.Info("high-risk case",
			zap.Int("rank", i+1),
			zap.String("case_ref", c.CaseRef),
			zap.String("category", c.Analysis.FraudCategory),
			zap.Int("confidence", c.Analysis.Confidence),
		)
	}

	logger.Info("scamshield service completed")
}

func newLogger(environment string) *zap.Logger {
	if environment == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}

// buildAnalyzers wires the configured remote backends in priority order:
// Gemini first, then OpenAI.
func buildAnalyzers(ctx context.Context, cfg *config.Config, logger *zap.Logger) []ports.Analyzer {
	var analyzers []ports.Analyzer
	timeout := time.Duration(cfg.Providers.TimeoutSeconds) * time.Second

	if cfg.Providers.GeminiAPIKey != "" {
		gemini, err := providers.NewGeminiAnalyzer(ctx, cfg.Providers.GeminiAPIKey, cfg.Providers.GeminiModel)
		if err != nil {
			logger.Warn("gemini analyzer unavailable", zap.Error(err))
		} else {
			analyzers = append(analyzers, gemini)
			logger.Info("gemini analyzer enabled")
		}
	}

	if cfg.Providers.OpenAIAPIKey != "" {
		analyzers = append(analyzers, providers.NewOpenAIAnalyzer(
			cfg.Providers.OpenAIBaseURL,
			cfg.Providers.OpenAIAPIKey,
			cfg.Providers.OpenAIModel,
			timeout,
		))
		logger.Info("openai analyzer enabled")
	}

	return analyzers
}
