package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost", 0)
	client2 := NewHTTPClient("http://localhost", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("http://example.test", 3*time.Second)

	assert.Equal(t, "http://example.test", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestHTTPClient_PropagatesTraceID(t *testing.T) {
	var gotTraceID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get(TraceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-42")

	resp, err := client.R().SetContext(ctx).Get("/ping")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "trace-42", gotTraceID)
}

func TestHTTPClient_NoTraceIDWithoutContextValue(t *testing.T) {
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header[TraceIDHeader]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).R().Get("/ping")

	require.NoError(t, err)
	assert.False(t, hadHeader)
}
