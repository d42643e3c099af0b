// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/truvoice/internal/adapter"
	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
)

// QuestionSeparator joins the suggested questions in the Suggest output.
const QuestionSeparator = "||"

const suggestPrompt = `Write exactly 3 open-ended questions for an anonymous messaging platform.

Rules:
- every question should invite a friendly, meaningful answer
- suitable for all ages, no personal or sensitive topics
- keep the tone positive, creative and light
- separate the questions with '||' and no surrounding spaces

For example:
- What's a skill you'd love to learn and why?
- If you could visit any place in the world, where would it be?

Now write 3 new questions:`

const refinePromptTemplate = `Improve this anonymous message without changing what it is trying to say:

Message: %q

Rules:
- keep the meaning and intent
- make it clearer and better structured
- keep it respectful
- 1 to 3 sentences
- keep the anonymous tone

Improved message:`

var (
	// malformedFallback is served when the generator answers with fewer than
	// two questions.
	malformedFallback = []string{
		"What's a book or movie that changed your perspective?",
		"If you could have any superpower for a day, what would it be?",
		"What's the best advice you've ever received?",
	}

	// failureFallback is served when the generator call fails.
	failureFallback = []string{
		"What's something you're passionate about?",
		"If you could time travel, which era would you visit?",
		"What's a random act of kindness you've witnessed?",
	}
)

type suggestionService struct {
	generator  adapter.TextGenerator
	configured bool
	logger     *logger.Logger
}

func NewSuggestionService(generator adapter.TextGenerator, cfg config.AI, logger *logger.Logger) SuggestionService {
	return &suggestionService{
		generator:  generator,
		configured: generator != nil && cfg.APIKey != "",
		logger:     logger,
	}
}

func (s *suggestionService) Suggest(ctx context.Context) string {
	log := logger.FromContext(ctx)

	if !s.configured {
		log.Warn().Msg("text generator is not configured, serving fallback questions")
		return strings.Join(failureFallback, QuestionSeparator)
	}

	text, err := s.generator.Generate(ctx, suggestPrompt)
	if err != nil {
		log.Err(err).Msg("question generation failed, serving fallback questions")
		return strings.Join(failureFallback, QuestionSeparator)
	}

	text = strings.TrimSpace(text)
	if len(strings.Split(text, QuestionSeparator)) < 2 {
		log.Warn().Str("text", text).Msg("malformed generated questions, serving fallback questions")
		return strings.Join(malformedFallback, QuestionSeparator)
	}

	return text
}

func (s *suggestionService) Refine(ctx context.Context, message string) (string, error) {
	if !s.configured {
		return "", ErrGeneratorNotConfigured
	}
	if message == "" {
		return "", ErrMessageRequired
	}

	text, err := s.generator.Generate(ctx, fmt.Sprintf(refinePromptTemplate, message))
	if err != nil {
		if errors.Is(err, adapter.ErrGeneratorNotConfigured) {
			return "", ErrGeneratorNotConfigured
		}
		logger.FromContext(ctx).Err(err).Msg("message refinement failed")
		return "", fmt.Errorf("%w: %w", ErrRefineFailed, err)
	}

	return strings.TrimSpace(text), nil
}
