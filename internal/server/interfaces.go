// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server runs the TruVoice API listener. RunServer blocks until SIGINT,
// SIGTERM or SIGQUIT arrives or Shutdown is called; in-flight requests get
// a bounded grace period to finish.
type Server interface {
	RunServer()
	Shutdown()
}
