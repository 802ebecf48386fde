// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment-variable fallback.

# Settings

  - PORT (-p): server port (default: 8080)
  - DATABASE_URL (-d): connection string, required
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - IMPORT_FILE (-import): optional candidates CSV to ingest on startup

CLI flags take precedence over environment variables. A .env file, if
present, is loaded by main before parsing.
*/
package cliparse
