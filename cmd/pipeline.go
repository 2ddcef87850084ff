package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skill-gap/internal/analysis"
	"github.com/spigell/skill-gap/internal/coach"
	"github.com/spigell/skill-gap/internal/headhunter"
	"github.com/spigell/skill-gap/internal/secrets"
	"github.com/spigell/skill-gap/internal/similarity"
	"github.com/spigell/skill-gap/internal/skills"
	"github.com/spigell/skill-gap/internal/source"
	"github.com/spigell/skill-gap/internal/textnorm"
	"github.com/spigell/skill-gap/internal/vocabulary"
)

const (
	geminiAPIKeyEnv   = "GEMINI_API_KEY"
	headhunterAuthEnv = "HH_TOKEN"
)

// buildVocabulary returns the default vocabulary, a vocabulary file and any
// extra entries from the configuration.
func buildVocabulary(cfg VocabularyConfig) (*vocabulary.Vocabulary, error) {
	vocab := vocabulary.Default()

	if file := strings.TrimSpace(cfg.File); file != "" {
		loaded, err := vocabulary.LoadFile(file)
		if err != nil {
			return nil, err
		}
		vocab = loaded
	}

	if len(cfg.Extra) == 0 {
		return vocab, nil
	}

	return vocabulary.Extend(vocab, cfg.Extra...)
}

func newAnalyzer(config *Config, logger *zap.Logger) (*analysis.Analyzer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	vocab, err := buildVocabulary(config.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}

	tokenizer := textnorm.SelectTokenizer(config.Tokenizer, logger)

	scorer, err := similarity.NewScorer(config.Similarity.Method, config.Similarity.MaxFeatures, logger)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	logger.Debug("pipeline ready",
		zap.Int("vocabulary_size", vocab.Len()),
		zap.String("tokenizer", tokenizer.Name()),
		zap.String("similarity_method", scorer.Method()),
	)

	return analysis.New(analysis.Deps{
		Normalizer: textnorm.New(tokenizer, logger),
		Matcher:    skills.NewMatcher(vocab),
		Scorer:     scorer,
		Logger:     logger,
	}, analysis.Options{
		TopSkills:          config.Analysis.TopSkills,
		MaxRecommendations: config.Analysis.MaxRecommendations,
	}), nil
}

func newLoader(ctx context.Context, config *Config, logger *zap.Logger) (*source.Loader, error) {
	token, err := secrets.Optional(secrets.Source{
		Name: "headhunter token",
		File: config.HeadHunter.TokenFile,
		Env:  headhunterAuthEnv,
	})
	if err != nil {
		return nil, err
	}

	hh := headhunter.New(logger, token)
	if config.HeadHunter.UserAgent != "" {
		hh.UserAgent = config.HeadHunter.UserAgent
	}
	if config.HeadHunter.APIURL != "" {
		hh.APIURL = strings.TrimRight(config.HeadHunter.APIURL, "/")
	}

	opts := source.Options{
		Stdin:      os.Stdin,
		HeadHunter: hh,
		Logger:     logger,
	}

	s3Client, err := source.NewS3Client(ctx, config.S3)
	if err != nil {
		logger.Warn("s3 inputs are disabled", zap.Error(err))
	} else {
		opts.S3 = s3Client
	}

	return source.New(opts), nil
}

func newPlanner(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (*coach.Planner, error) {
	if cfg.Gemini == nil {
		return nil, errors.New("ai.gemini section is required")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or %s)", err, geminiAPIKeyEnv)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := coach.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return coach.NewPlanner(generator, logger.With(zap.String("model", generator.Model())), cfg.Gemini.MaxLogLength), nil
}

// learningPlan never fails the run: the report is printed without a plan
// when the model is unavailable.
func learningPlan(ctx context.Context, cfg *AIConfig, logger *zap.Logger, resume, job string, result *analysis.Result) *coach.LearningPlan {
	planner, err := newPlanner(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping learning plan", zap.Error(err))
		return nil
	}

	plan, err := planner.Plan(ctx, resume, job, result)
	if err != nil {
		logger.Warn("skipping learning plan", zap.Error(err))
		return nil
	}

	logger.Info("learning plan ready", zap.Int("steps", len(plan.Steps)))
	return plan
}

// redacted hides secrets before the config is logged.
func redacted(config *Config) Config {
	out := *config
	if out.S3.SecretKey != "" {
		out.S3.SecretKey = "***"
	}
	if out.AI != nil && out.AI.Gemini != nil && out.AI.Gemini.APIKey != "" {
		ai := *out.AI
		gemini := *ai.Gemini
		gemini.APIKey = "***"
		ai.Gemini = &gemini
		out.AI = &ai
	}
	return out
}
