// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace ID across service boundaries.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://example.com", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL. A zero timeout
// leaves resty's default (none) in place.
//
// Every request built with SetContext forwards the trace ID found under
// [TraceIDCtxKey] as the X-Trace-ID header.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
			r.SetHeader(TraceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
