// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ward-candidates API.

# Handler Types

WardHandler serves both ward endpoints and is created via a constructor
that accepts the candidate store and config:

	wardHandler := handlers.NewWardHandler(st, cfg)

# Endpoints

	GET /api/v1/wards/{ward_id}/candidates - candidates for one ward
	GET /api/v1/wards                      - distinct ward ids

Both take an optional candidate_type query parameter (default "ward").

# Status Code Contract

The failure tiers of the store map onto fixed responses:

  - empty ward_id: 400 "Invalid ward_id"
  - no matches, or candidate type with no resolvable key column
    (candidates endpoint): 200 with an empty list and a message
  - candidate type with no resolvable key column (wards endpoint):
    404 "No ward data available"
  - query failure after resolution: 500 "Internal server error",
    with the underlying error logged, never echoed to the client
*/
package handlers
