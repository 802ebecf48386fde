// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package locator resolves which column holds the geographic key for a
candidate type.

# Locator Strings

Every candidates row carries a locator, a brace-delimited list of the
columns relevant to its candidate_type:

	{ward_code,ward_name}

The first entry is the geographic key column for that type. All rows of
one type carry the same locator, so resolution inspects a single row:

	column, ok := resolver.KeyColumn("ward") // "ward_code", true

# The Registry

The resolved name is interpolated into query text as an identifier, and
identifiers cannot be bound as parameters. Because locator values live in
the database, they are treated as untrusted input: a Registry of the
table's physical columns is loaded once at startup, and KeyColumn refuses
any resolved name that is not registered.

	reg, err := locator.LoadRegistry(conn, cfg.DatabaseType)
	resolver := locator.NewResolver(conn, reg)

# Failure Contract

KeyColumn is fail-soft: no row for the type, a lookup error, or an
unregistered column all log and return ok=false. It never returns a raw
database error to the caller.
*/
package locator
