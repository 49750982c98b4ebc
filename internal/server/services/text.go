package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/reomoon/memo/internal/common"
	"github.com/reomoon/memo/internal/logging"
	"github.com/reomoon/memo/internal/server/ai"
	"github.com/reomoon/memo/internal/server/models"
)

// Completer turns a prompt into model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextService generates titles, summaries and categories. A nil Completer
// means no provider key is configured.
type TextService struct {
	ai     Completer
	logger logging.Logger
}

func NewTextService(c Completer, logger logging.Logger) *TextService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TextService{ai: c, logger: logger.With("module", "text_service")}
}

func (s *TextService) complete(ctx context.Context, input, what string, prompt func(string) string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("%w: %s is required", common.ErrorValidation, what)
	}
	if s.ai == nil {
		return "", fmt.Errorf("%w: AI API key is not set", common.ErrorNotConfigured)
	}
	out, err := s.ai.Complete(ctx, prompt(input))
	if err != nil {
		s.logger.Error(ctx, "AI request failed", "input", what, "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrorUpstream, err)
	}
	return strings.TrimSpace(out), nil
}

// GenerateTitle returns one short title for body.
func (s *TextService) GenerateTitle(ctx context.Context, body string) (string, error) {
	return s.complete(ctx, body, "body", ai.TitlePrompt)
}

// Summarize returns a two or three line summary of body.
func (s *TextService) Summarize(ctx context.Context, body string) (string, error) {
	return s.complete(ctx, body, "body", ai.SummaryPrompt)
}

// ClassifyCategory returns the model label for text, or
// models.DefaultCategory when the model answers with empty text. The label
// is not checked against models.Categories.
func (s *TextService) ClassifyCategory(ctx context.Context, text string) (string, error) {
	category, err := s.complete(ctx, text, "text", ai.CategoryPrompt)
	if err != nil {
		return "", err
	}
	if category == "" {
		return models.DefaultCategory, nil
	}
	return category, nil
}
