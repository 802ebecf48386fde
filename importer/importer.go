// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// Row is one candidates CSV record. The geographic columns form a sparse
// superset: a row fills only the pair its candidate_type uses, and the
// locator says which pair that is.
type Row struct {
	ID            string `csv:"id"`
	CandidateType string `csv:"candidate_type"`
	Locator       string `csv:"locator"`
	Name          string `csv:"name"`
	Party         string `csv:"party"`
	OrderNo       string `csv:"orderno"`
	WardCode      string `csv:"ward_code"`
	WardName      string `csv:"ward_name"`
	MunicipalCode string `csv:"municipal_code"`
	MunicipalName string `csv:"municipal_name"`
	ProvinceCode  string `csv:"province_code"`
	ProvinceName  string `csv:"province_name"`
}

// ImportCSV loads candidate rows from path into the candidates table and
// returns the number of rows inserted. Rows without an id get a fresh
// UUID. Inserts run in one transaction so a malformed file leaves the
// table untouched.
func ImportCSV(db *sql.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	var rows []*Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse import file: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO candidates (
			id, candidate_type, locator, name, party, orderno,
			ward_code, ward_name, municipal_code, municipal_name,
			province_code, province_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if row.CandidateType == "" || row.Locator == "" {
			return 0, fmt.Errorf("record %d: candidate_type and locator are required", i+1)
		}
		if row.ID == "" {
			row.ID = uuid.NewString()
		}

		_, err := stmt.Exec(
			row.ID, row.CandidateType, row.Locator, row.Name, row.Party, row.OrderNo,
			nullable(row.WardCode), nullable(row.WardName),
			nullable(row.MunicipalCode), nullable(row.MunicipalName),
			nullable(row.ProvinceCode), nullable(row.ProvinceName),
		)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return len(rows), nil
}

// nullable maps empty CSV cells to NULL so absent geographic columns stay
// NULL rather than empty string.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
