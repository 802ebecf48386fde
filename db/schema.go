// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the subset both Postgres and SQLite accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidates, all types in one table.
-- locator lists the columns relevant to a candidate_type as
-- {col,col,...}; its first entry names the geographic key column.
-- orderno is stored as text on purpose: upstream ballot files carry it
-- as text and ordering follows the stored representation.
CREATE TABLE IF NOT EXISTS candidates (
    id TEXT PRIMARY KEY,
    candidate_type TEXT NOT NULL,
    locator TEXT NOT NULL,
    name TEXT NOT NULL,
    party TEXT,
    orderno TEXT,
    ward_code TEXT,
    ward_name TEXT,
    municipal_code TEXT,
    municipal_name TEXT,
    province_code TEXT,
    province_name TEXT
);

CREATE INDEX IF NOT EXISTS idx_candidates_type ON candidates(candidate_type);
CREATE INDEX IF NOT EXISTS idx_candidates_ward_code ON candidates(ward_code);
CREATE INDEX IF NOT EXISTS idx_candidates_municipal_code ON candidates(municipal_code);
`
