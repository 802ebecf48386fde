// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ward-candidates API server.

The server exposes election-candidate data over HTTP: candidates
registered against a ward, and the set of known ward identifiers, both
scoped by candidate type (ward, municipal, provincial, ...). Each type
stores its geographic key under a different column; which one is
discovered at request time from the type's locator string.

# Starting the Server

The server requires a database URL via environment or CLI flags:

	DATABASE_URL=candidates.db go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

# Configuration

  - DATABASE_URL (-d): connection string, required
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PORT (-p): server port (default: 8080)
  - IMPORT_FILE (-import): candidates CSV to ingest before serving

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers for the ward endpoints
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Response and domain types
  - locator: Key-column resolution and the identifier registry
  - store: Candidate and ward queries
  - db: Schema creation
  - importer: CSV ingest
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
