// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response and domain types for the API.

# Domain Types

Candidate rows are dynamic: each candidate_type stores its geographic key
under a different column, so a row is a map from column name to value
rather than a fixed struct:

	type Candidate map[string]any

Ward wraps a single distinct value of the resolved key column:

	type Ward struct{ WardID string }

# Response Types

Envelopes for JSON responses:

  - WardCandidatesResponse: ward_id, candidate_type, candidates, count,
    optional message (set when the result is empty)
  - WardListResponse: candidate_type, wards, count
  - ErrorResponse: error, message

# Constants

Well-known candidate types:

	TypeWard       = "ward"
	TypeMunicipal  = "municipal"
	TypeProvincial = "provincial"
*/
package models
