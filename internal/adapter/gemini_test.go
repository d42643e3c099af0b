// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, baseURL, apiKey string) TextGenerator {
	t.Helper()
	g, err := NewGeminiTextGenerator(config.AI{
		APIKey:         apiKey,
		Model:          "gemini-2.5-flash",
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return g
}

func writeGeminiJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestGeminiGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "trace-7", r.Header.Get(utils.TraceIDHeader))

		var req geminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: "say hi"}}}},
		}, req)

		writeGeminiJSON(w, http.StatusOK, map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": "  hi "}, map[string]any{"text": "there\n"}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer srv.Close()

	ctx := context.WithValue(context.Background(), utils.TraceIDCtxKey, "trace-7")
	got, err := newTestGenerator(t, srv.URL+"/v1beta/", "test-key").Generate(ctx, "say hi")

	require.NoError(t, err)
	assert.Equal(t, "hi there", got)
}

func TestGeminiGenerate_NotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestGenerator(t, srv.URL, "").Generate(context.Background(), "say hi")

	assert.ErrorIs(t, err, ErrGeneratorNotConfigured)
	assert.False(t, called)
}

func TestGeminiGenerate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeGeminiJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": 400, "message": "API key not valid.", "status": "INVALID_ARGUMENT"},
		})
	}))
	defer srv.Close()

	_, err := newTestGenerator(t, srv.URL, "bad-key").Generate(context.Background(), "say hi")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneratorFailed)
	assert.Contains(t, err.Error(), "API key not valid.")
	assert.Contains(t, err.Error(), "http 400")
}

func TestGeminiGenerate_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := newTestGenerator(t, srv.URL, "k").Generate(context.Background(), "say hi")

	assert.ErrorIs(t, err, ErrGeneratorFailed)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestGeminiGenerate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeGeminiJSON(w, http.StatusOK, map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	_, err := newTestGenerator(t, srv.URL, "k").Generate(context.Background(), "say hi")

	assert.ErrorIs(t, err, ErrEmptyGeneration)
}

func TestGeminiGenerate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestGenerator(t, url, "k").Generate(context.Background(), "say hi")

	assert.ErrorIs(t, err, ErrGeneratorFailed)
}

func TestNewGeminiTextGenerator_InvalidBaseURL(t *testing.T) {
	_, err := NewGeminiTextGenerator(config.AI{BaseURL: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://generativelanguage.googleapis.com/v1beta/", want: "https://generativelanguage.googleapis.com/v1beta"},
		{in: "localhost:9000", want: "https://localhost:9000"},
		{in: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
