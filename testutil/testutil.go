// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/voterinfo/ward-candidates/cliparse"
	"github.com/voterinfo/ward-candidates/db"
	"github.com/voterinfo/ward-candidates/locator"
	"github.com/voterinfo/ward-candidates/store"
)

// Locator values used by seeded candidate types.
const (
	WardLocator      = "{ward_code,ward_name}"
	MunicipalLocator = "{municipal_code,municipal_name}"
	ProvinceLocator  = "{province_code,province_name}"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection keeps every query on the same in-memory database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewStore builds a CandidateStore over conn with a registry loaded from
// the live schema, the same wiring main performs at startup.
func NewStore(t *testing.T, conn *sql.DB) *store.CandidateStore {
	t.Helper()

	reg, err := locator.LoadRegistry(conn, "sqlite")
	if err != nil {
		t.Fatalf("Failed to load column registry: %v", err)
	}

	return store.New(conn, locator.NewResolver(conn, reg))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// SeedRow describes one candidate to insert. Leave the geographic columns
// blank except the pair the row's candidate type uses.
type SeedRow struct {
	Type          string
	Locator       string
	Name          string
	Party         string
	OrderNo       string
	WardCode      string
	WardName      string
	MunicipalCode string
	MunicipalName string
	ProvinceCode  string
	ProvinceName  string
}

// SeedCandidate inserts a candidate row and returns its generated id
func SeedCandidate(t *testing.T, conn *sql.DB, row SeedRow) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO candidates (
			id, candidate_type, locator, name, party, orderno,
			ward_code, ward_name, municipal_code, municipal_name,
			province_code, province_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, id, row.Type, row.Locator, row.Name, row.Party, row.OrderNo,
		nullable(row.WardCode), nullable(row.WardName),
		nullable(row.MunicipalCode), nullable(row.MunicipalName),
		nullable(row.ProvinceCode), nullable(row.ProvinceName))
	if err != nil {
		t.Fatalf("Failed to seed candidate: %v", err)
	}

	return id
}

// SeedWardCandidate inserts a candidate of type "ward" under wardCode
func SeedWardCandidate(t *testing.T, conn *sql.DB, wardCode, name, party, orderNo string) string {
	t.Helper()
	return SeedCandidate(t, conn, SeedRow{
		Type:     "ward",
		Locator:  WardLocator,
		Name:     name,
		Party:    party,
		OrderNo:  orderNo,
		WardCode: wardCode,
	})
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
