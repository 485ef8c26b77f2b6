package gen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"studybot/internal/models"
)

var _ Generator = (*GeminiGenerator)(nil)

// GeminiGenerator invokes the Gemini API via google.golang.org/genai
type GeminiGenerator struct {
	model  string
	cli    *genai.Client
	logger *zap.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiGenerator, error) {
	if model == "" {
		return nil, fmt.Errorf("gemini model cannot be empty")
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		model:  model,
		cli:    cli,
		logger: logger,
	}, nil
}

// Generate implements Generator. Any backend failure resolves to the
// GenerationFailed notice.
func (g *GeminiGenerator) Generate(ctx context.Context, mode models.Mode, text string) string {
	prompt := BuildPrompt(mode, text)

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.Error("Gemini request failed",
			zap.String("mode", string(mode)),
			zap.Error(err),
		)
		return GenerationFailed
	}

	result := strings.TrimSpace(resp.Text())
	if result == "" {
		g.logger.Error("Gemini returned an empty response",
			zap.String("mode", string(mode)),
		)
		return GenerationFailed
	}

	return result
}
