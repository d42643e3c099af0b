// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for request-scoped context values, the identity provider
// secret hash, password hashing, HTTP response writing and HTTP client
// initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace ID is stored.
// Outbound clients read it back to propagate the X-Trace-ID header.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the request trace ID from the context.
//
// Returns the trace ID and an ok flag:
//   - ok == true  : value is found and is a non-empty string
//   - ok == false : value is missing or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
