// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/utils"
)

const generateContentPath = "/models/{model}:generateContent"

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type geminiTextGenerator struct {
	client *utils.HTTPClient
	apiKey string
	model  string
	logger *logger.Logger
}

// NewGeminiTextGenerator returns a TextGenerator backed by the Gemini
// generateContent REST endpoint. An empty cfg.APIKey yields a generator that
// fails every call with [ErrGeneratorNotConfigured].
func NewGeminiTextGenerator(cfg config.AI, log *logger.Logger) (TextGenerator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid generator base url: %w", err)
	}

	return &geminiTextGenerator{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: log,
	}, nil
}

func (g *geminiTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrGeneratorNotConfigured
	}

	var result geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("model", g.model).
		SetQueryParam("key", g.apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		SetResult(&result).
		SetError(&geminiErrorResponse{}).
		Post(generateContentPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratorFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var sb strings.Builder
	if len(result.Candidates) > 0 {
		for _, part := range result.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyGeneration
	}

	g.logger.Debug().Str("model", g.model).Int("length", len(text)).Msg("text generated")
	return text, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
