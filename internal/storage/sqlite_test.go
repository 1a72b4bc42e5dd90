package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cardata/cardb/cars"
)

// setupTestStore opens an in-memory SQLite database for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func testTable() *cars.Table {
	return &cars.Table{
		Columns: []string{"make", "model", "body_styles", "year"},
		Rows: [][]any{
			{"Acura", "NSX", "Coupe", 1992},
			{"Toyota", "Corolla", "Sedan", 2020},
		},
	}
}

func TestOpenAppliesSchema(t *testing.T) {
	s := setupTestStore(t)

	var name string
	err := s.conn.Get(&name,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, cars.TableName)
	if err != nil {
		t.Fatalf("all_cars table missing after Open: %v", err)
	}
}

func TestReplaceAllCars(t *testing.T) {
	s := setupTestStore(t)

	if err := s.ReplaceAllCars(testTable()); err != nil {
		t.Fatalf("ReplaceAllCars failed: %v", err)
	}

	rows, err := s.conn.Queryx(`SELECT make, model, body_styles, year FROM all_cars ORDER BY rowid`)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	type carRow struct {
		Make       string `db:"make"`
		Model      string `db:"model"`
		BodyStyles string `db:"body_styles"`
		Year       int    `db:"year"`
	}

	var got []carRow
	for rows.Next() {
		var r carRow
		if err := rows.StructScan(&r); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		got = append(got, r)
	}

	want := []carRow{
		{"Acura", "NSX", "Coupe", 1992},
		{"Toyota", "Corolla", "Sedan", 2020},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReplaceAllCarsIsReplaceNotAppend(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 2; i++ {
		if err := s.ReplaceAllCars(testTable()); err != nil {
			t.Fatalf("ReplaceAllCars run %d failed: %v", i, err)
		}
	}

	n, err := s.CountCars()
	if err != nil {
		t.Fatalf("CountCars failed: %v", err)
	}
	if n != 2 {
		t.Errorf("row count after rerun = %d, want 2", n)
	}
}

func TestReplaceAllCarsRedefinesSchema(t *testing.T) {
	s := setupTestStore(t)

	if err := s.ReplaceAllCars(testTable()); err != nil {
		t.Fatalf("first ReplaceAllCars failed: %v", err)
	}

	wider := &cars.Table{
		Columns: []string{"make", "model", "body_styles", "year", "trim"},
		Rows: [][]any{
			{"Acura", "NSX", "Coupe", 1992, nil},
			{"Tesla", "Model S", "Sedan", 2026, "Plaid"},
		},
	}
	if err := s.ReplaceAllCars(wider); err != nil {
		t.Fatalf("second ReplaceAllCars failed: %v", err)
	}

	var trim *string
	err := s.conn.Get(&trim, `SELECT "trim" FROM all_cars WHERE make = 'Tesla'`)
	if err != nil {
		t.Fatalf("trim column missing after replace: %v", err)
	}
	if trim == nil || *trim != "Plaid" {
		t.Errorf("trim = %v, want Plaid", trim)
	}

	err = s.conn.Get(&trim, `SELECT "trim" FROM all_cars WHERE make = 'Acura'`)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if trim != nil {
		t.Errorf("Acura trim = %v, want NULL", *trim)
	}
}

func TestReplaceAllCarsBatching(t *testing.T) {
	s := setupTestStore(t)

	// More rows than one insert batch holds.
	table := &cars.Table{Columns: []string{"make", "model", "body_styles", "year"}}
	for i := 0; i < insertBatchSize*2+50; i++ {
		table.Rows = append(table.Rows, []any{fmt.Sprintf("Make%d", i), "Model", "Sedan", 2000})
	}

	if err := s.ReplaceAllCars(table); err != nil {
		t.Fatalf("ReplaceAllCars failed: %v", err)
	}

	n, err := s.CountCars()
	if err != nil {
		t.Fatalf("CountCars failed: %v", err)
	}
	if n != len(table.Rows) {
		t.Errorf("row count = %d, want %d", n, len(table.Rows))
	}
}

func TestReplaceAllCarsEmptyTable(t *testing.T) {
	s := setupTestStore(t)

	err := s.ReplaceAllCars(&cars.Table{})
	if err == nil {
		t.Fatal("expected error for table with no columns")
	}
}

func TestOpenCreatesFile(t *testing.T) {
	dbfile := filepath.Join(t.TempDir(), "cars.db")

	s, err := Open(dbfile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.ReplaceAllCars(testTable()); err != nil {
		s.Close()
		t.Fatalf("ReplaceAllCars failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen to confirm the data was committed to disk.
	s2, err := Open(dbfile)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	n, err := s2.CountCars()
	if err != nil {
		t.Fatalf("CountCars after reopen failed: %v", err)
	}
	if n != 2 {
		t.Errorf("row count after reopen = %d, want 2", n)
	}
}
