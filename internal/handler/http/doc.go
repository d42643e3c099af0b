// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of TruVoice.
//
// It wires routes, request handlers and middleware. Request tracing, access
// logging, Prometheus instrumentation and response compression happen here
// before requests reach the service layer. Service errors are translated to
// status codes and client messages in one table (see errors_mapper.go).
package http
