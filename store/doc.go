// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store answers candidate queries against the candidates table.

# CandidateStore

Created with a database handle and a locator.Resolver:

	st := store.New(conn, resolver)

ListCandidates resolves the key column for the type, then selects every
row where that column equals the ward id, ordered by (orderno, party,
name) ascending. Rows come back as models.Candidate maps because the
column set varies per type.

ListWards resolves the same way, then selects the distinct values of the
key column for the type.

# Failure Tiers

The two operations deliberately split the failure space three ways:

  - resolution miss in ListCandidates: empty slice, nil error (200 with
    an empty list at the transport layer)
  - resolution miss in ListWards: ErrNoWardData (404)
  - query failure in either: a wrapped error (500)

Callers must not collapse these; the distinction is the contract.
*/
package store
