// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

# Schema Creation

CreateSchema is idempotent and runs at startup:

	if err := db.CreateSchema(conn); err != nil { ... }

# The candidates Table

All candidate types share one table. Fixed columns:

	id, candidate_type, locator, name, party, orderno

plus one geographic column pair per type (ward_code/ward_name,
municipal_code/municipal_name, province_code/province_name). Which pair
applies to a row is recorded in that row's locator string; see the
locator package.

The DDL avoids Postgres-only and SQLite-only constructs so the same
schema runs against either backend.
*/
package db
