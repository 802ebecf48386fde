// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locator

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// ParseKeyColumn extracts the geographic key column from a locator string.
// A locator is a brace-delimited, comma-separated list of column names,
// e.g. "{ward_code,ward_name}"; the first entry is the key column.
// Only the enclosing braces are stripped; token text is kept verbatim.
func ParseKeyColumn(locator string) (string, bool) {
	tokens := strings.Split(strings.Trim(locator, "{}"), ",")
	if len(tokens) == 0 || tokens[0] == "" {
		return "", false
	}
	return tokens[0], true
}

// Registry is the set of column identifiers that may be interpolated into
// query text. Locator strings come from stored data, so a resolved column
// name is never trusted until it passes the registry.
type Registry struct {
	columns map[string]struct{}
}

// NewRegistry builds a registry from an explicit column list.
func NewRegistry(columns []string) *Registry {
	r := &Registry{columns: make(map[string]struct{}, len(columns))}
	for _, c := range columns {
		r.columns[c] = struct{}{}
	}
	return r
}

// LoadRegistry introspects the candidates table and registers its physical
// columns. dialect is "sqlite" or "postgres".
func LoadRegistry(db *sql.DB, dialect string) (*Registry, error) {
	var query string
	switch dialect {
	case "sqlite":
		query = `SELECT name FROM pragma_table_info('candidates')`
	case "postgres":
		query = `SELECT column_name FROM information_schema.columns WHERE table_name = 'candidates'`
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to introspect candidates table: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to introspect candidates table: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("candidates table has no columns (schema not created?)")
	}

	return NewRegistry(columns), nil
}

// Permitted reports whether column is a known candidates column.
func (r *Registry) Permitted(column string) bool {
	_, ok := r.columns[column]
	return ok
}

// Columns returns the registered identifiers in sorted order.
func (r *Registry) Columns() []string {
	out := make([]string, 0, len(r.columns))
	for c := range r.columns {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Resolver determines which column holds the geographic key for a
// candidate type by reading that type's locator from the store.
type Resolver struct {
	db       *sql.DB
	registry *Registry
}

func NewResolver(db *sql.DB, registry *Registry) *Resolver {
	return &Resolver{db: db, registry: registry}
}

// KeyColumn resolves the geographic key column for candidateType.
//
// It re-queries on every call so the answer tracks the latest ingested
// locator for the type. Every failure mode - no row for the type, a query
// error, a locator whose first token is not a registered column - is
// logged and reported as ok=false, never as an error. Callers decide how
// an unresolved column degrades.
func (r *Resolver) KeyColumn(candidateType string) (string, bool) {
	var gotType, loc string
	err := r.db.QueryRow(`
		SELECT DISTINCT candidate_type, locator FROM candidates
		WHERE candidate_type = $1
		LIMIT 1
	`, candidateType).Scan(&gotType, &loc)

	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Error("failed to look up locator", "candidate_type", candidateType, "error", err)
		return "", false
	}

	column, ok := ParseKeyColumn(loc)
	if !ok {
		slog.Warn("empty locator", "candidate_type", candidateType, "locator", loc)
		return "", false
	}

	if !r.registry.Permitted(column) {
		slog.Warn("locator names an unregistered column, refusing to use it",
			"candidate_type", candidateType, "column", column)
		return "", false
	}

	return column, true
}
