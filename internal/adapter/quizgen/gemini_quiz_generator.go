package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiQuizGenerator implements domain.QuizGenerationService using the
// LangchainGo Gemini client with JSON-constrained output.
type GeminiQuizGenerator struct {
	llm    llms.Model
	cfg    config.GeminiConfig
	logger *zap.Logger
}

// NewGeminiQuizGenerator creates a new instance of GeminiQuizGenerator.
func NewGeminiQuizGenerator(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (domain.QuizGenerationService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}
	logger.Info("Initializing GeminiQuizGenerator", zap.String("model", cfg.Model))

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiQuizGenerator{
		llm:    llm,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// GenerateQuiz implements domain.QuizGenerationService. It sends a single
// prompt to the model and parses the schema-constrained JSON response into
// a validated Quiz.
func (g *GeminiQuizGenerator) GenerateQuiz(ctx context.Context, articleText string, title string) (*domain.Quiz, error) {
	prompt := BuildQuizPrompt(articleText, title)

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	g.logger.Info("Invoking Gemini for quiz generation",
		zap.String("title", title),
		zap.Int("prompt_length", len(prompt)),
	)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(g.cfg.Temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		g.logger.Error("Gemini call failed", zap.Error(err), zap.String("title", title))
		return nil, domain.NewLLMInvocationError(err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewLLMInvocationError(fmt.Errorf("empty response from model"))
	}

	g.logger.Debug("Raw Gemini response received", zap.String("raw_response", raw))

	quiz, err := parseQuizResponse(raw)
	if err != nil {
		g.logger.Error("Failed to parse Gemini response", zap.Error(err))
		return nil, err
	}

	g.logger.Info("Quiz generated",
		zap.String("title", title),
		zap.Int("questions", len(quiz.Questions)),
		zap.Int("related_topics", len(quiz.RelatedTopics)),
	)
	return quiz, nil
}

// parseQuizResponse decodes the model output into a Quiz and enforces the
// structural invariants. Models occasionally wrap JSON in markdown fences
// even in JSON mode, so fences are stripped before decoding.
func parseQuizResponse(raw string) (*domain.Quiz, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	jsonStart := strings.Index(clean, "{")
	jsonEnd := strings.LastIndex(clean, "}")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		return nil, domain.NewSchemaValidationError("no JSON object found in model response")
	}
	clean = clean[jsonStart : jsonEnd+1]

	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(clean), &quiz); err != nil {
		return nil, domain.NewSchemaValidationError(fmt.Sprintf("model response is not valid JSON: %v", err))
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Static assertion to ensure GeminiQuizGenerator implements QuizGenerationService
var _ domain.QuizGenerationService = (*GeminiQuizGenerator)(nil)
