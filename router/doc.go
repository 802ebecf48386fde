// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ward-candidates API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Ward data (public, read-only):

	GET /api/v1/wards                          - Distinct ward ids for a candidate type
	GET /api/v1/wards/{ward_id}/candidates     - Candidates registered against a ward

Both accept an optional candidate_type query parameter (default "ward").

All endpoints use Go 1.22+ method-qualified routing, so unsupported
methods on known paths return 405 from the mux itself.
*/
package router
