// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/voterinfo/ward-candidates/locator"
	"github.com/voterinfo/ward-candidates/models"
)

// ErrNoWardData means no geographic key column could be resolved for the
// requested candidate type. Distinct from a query failure: an unresolved
// type is a 404 at the transport layer, a failed query a 500.
var ErrNoWardData = errors.New("no ward code for candidate type")

// CandidateStore answers ward-scoped candidate queries. Read-only and
// stateless; safe for concurrent use by the request dispatcher.
type CandidateStore struct {
	db       *sql.DB
	resolver *locator.Resolver
}

func New(db *sql.DB, resolver *locator.Resolver) *CandidateStore {
	return &CandidateStore{db: db, resolver: resolver}
}

// ListCandidates returns all candidates of candidateType registered
// against wardID, ordered by orderno, then party, then name. orderno is
// text, so the ordering is lexicographic on the stored value.
//
// An unresolved candidate type yields an empty slice and a nil error; a
// failure of the candidate query itself yields a non-nil error.
func (s *CandidateStore) ListCandidates(wardID, candidateType string) ([]models.Candidate, error) {
	column, ok := s.resolver.KeyColumn(candidateType)
	if !ok {
		slog.Warn("no ward code column for candidate type", "candidate_type", candidateType)
		return []models.Candidate{}, nil
	}

	// column passed the registry allowlist; it is the only identifier
	// ever interpolated here.
	query := fmt.Sprintf(`
		SELECT * FROM candidates
		WHERE %s = $1 AND candidate_type = $2
		ORDER BY orderno, party, name
	`, column)

	rows, err := s.db.Query(query, wardID, candidateType)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates for ward %s: %w", wardID, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	candidates := []models.Candidate{}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}

		candidate := make(models.Candidate, len(columns))
		for i, name := range columns {
			if b, isBytes := values[i].([]byte); isBytes {
				candidate[name] = string(b)
			} else {
				candidate[name] = values[i]
			}
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate rows: %w", err)
	}

	return candidates, nil
}

// ListWards returns the distinct ward identifiers known for candidateType,
// in ascending order of the resolved key column.
//
// Returns ErrNoWardData when the type's key column cannot be resolved.
func (s *CandidateStore) ListWards(candidateType string) ([]models.Ward, error) {
	column, ok := s.resolver.KeyColumn(candidateType)
	if !ok {
		return nil, ErrNoWardData
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT %[1]s FROM candidates
		WHERE candidate_type = $1
		ORDER BY %[1]s
	`, column)

	rows, err := s.db.Query(query, candidateType)
	if err != nil {
		return nil, fmt.Errorf("failed to query wards for type %s: %w", candidateType, err)
	}
	defer rows.Close()

	wards := []models.Ward{}
	for rows.Next() {
		var id sql.NullString
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ward id: %w", err)
		}
		// Rows whose key column was never populated contribute a NULL
		if !id.Valid {
			continue
		}
		wards = append(wards, models.Ward{WardID: id.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ward rows: %w", err)
	}

	return wards, nil
}
