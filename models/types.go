// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Candidate type constants. These are partition labels, not an exhaustive
// enum: the store may carry additional types, each with its own locator.
const (
	TypeWard       = "ward"
	TypeMunicipal  = "municipal"
	TypeProvincial = "provincial"
)

// Candidate is one row of the candidates table. The geographic key column
// differs per candidate_type, so rows are column-name keyed rather than a
// fixed struct.
type Candidate map[string]any

// Ward is a distinct value of the resolved geographic key column.
type Ward struct {
	WardID string `json:"ward_id"`
}

// Response types

type WardCandidatesResponse struct {
	WardID        string      `json:"ward_id"`
	CandidateType string      `json:"candidate_type"`
	Candidates    []Candidate `json:"candidates"`
	Count         int         `json:"count"`
	Message       string      `json:"message,omitempty"`
}

type WardListResponse struct {
	CandidateType string `json:"candidate_type"`
	Wards         []Ward `json:"wards"`
	Count         int    `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
