// Package server runs the TruVoice HTTP server.
//
// It covers startup, signal handling and graceful shutdown.
package server
