// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/voterinfo/ward-candidates/cliparse"
	"github.com/voterinfo/ward-candidates/middleware"
	"github.com/voterinfo/ward-candidates/models"
	"github.com/voterinfo/ward-candidates/store"
)

type WardHandler struct {
	store *store.CandidateStore
	cfg   cliparse.Config
}

func NewWardHandler(st *store.CandidateStore, cfg cliparse.Config) *WardHandler {
	return &WardHandler{store: st, cfg: cfg}
}

// candidateType reads the candidate_type query parameter, defaulting to "ward".
func candidateType(r *http.Request) string {
	if t := r.URL.Query().Get("candidate_type"); t != "" {
		return t
	}
	return models.TypeWard
}

// GetWardCandidates handles GET /api/v1/wards/{ward_id}/candidates
// Returns every candidate of the requested type registered against the ward.
// An unknown ward or unresolvable candidate type is an empty 200, not an
// error; only a failed candidate query is a 500.
func (h *WardHandler) GetWardCandidates(w http.ResponseWriter, r *http.Request) {
	wardID := r.PathValue("ward_id")
	ctype := candidateType(r)

	if strings.TrimSpace(wardID) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"Invalid ward_id", "Ward ID cannot be empty")
		return
	}

	candidates, err := h.store.ListCandidates(wardID, ctype)
	if err != nil {
		slog.Error("failed to retrieve candidates", "ward_id", wardID, "candidate_type", ctype, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			"Internal server error", "An error occurred while retrieving candidates")
		return
	}

	response := models.WardCandidatesResponse{
		WardID:        wardID,
		CandidateType: ctype,
		Candidates:    candidates,
		Count:         len(candidates),
	}
	if len(candidates) == 0 {
		response.Message = fmt.Sprintf("No candidates found for ward %s", wardID)
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// GetAvailableWards handles GET /api/v1/wards
// Lists the distinct ward identifiers known for the candidate type.
// A type with no resolvable key column is a 404; a failed ward query a 500.
func (h *WardHandler) GetAvailableWards(w http.ResponseWriter, r *http.Request) {
	ctype := candidateType(r)

	wards, err := h.store.ListWards(ctype)
	if errors.Is(err, store.ErrNoWardData) {
		middleware.ErrorResponse(w, http.StatusNotFound,
			"No ward data available",
			fmt.Sprintf("No ward code found for candidate type: %s", ctype))
		return
	}
	if err != nil {
		slog.Error("failed to retrieve wards", "candidate_type", ctype, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			"Internal server error", "An error occurred while retrieving wards")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WardListResponse{
		CandidateType: ctype,
		Wards:         wards,
		Count:         len(wards),
	})
}
