// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/voterinfo/ward-candidates/cliparse"
	"github.com/voterinfo/ward-candidates/handlers"
	"github.com/voterinfo/ward-candidates/middleware"
	"github.com/voterinfo/ward-candidates/store"
)

func NewRouter(st *store.CandidateStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	wardHandler := handlers.NewWardHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Ward data (public, read-only)
	mux.HandleFunc("GET /api/v1/wards", middleware.WithLogging(wardHandler.GetAvailableWards))
	mux.HandleFunc("GET /api/v1/wards/{ward_id}/candidates", middleware.WithLogging(wardHandler.GetWardCandidates))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ward-candidates API v1"))
	})

	return mux
}
