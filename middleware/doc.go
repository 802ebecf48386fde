// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

  - WithLogging: wraps a handler with slog request/completion logs
  - JSONResponse / ErrorResponse: JSON envelope writers
  - CORS: permissive cross-origin handling for the read-only API
  - GetClientIP: client address extraction behind proxies

ErrorResponse takes an explicit error label because the API's error
envelopes use fixed strings ("Invalid ward_id", "No ward data available",
"Internal server error") rather than http.StatusText.
*/
package middleware
