// Package ingest reads per-year CSV files and merges them into a single
// in-memory table.
//
// Files are named <year>.csv for model years cars.FirstYear through
// cars.LastYear. Absent years are skipped with a notice; a scan that finds
// nothing at all is an error. Every parsed row has its year column forced to
// the year in the filename, whatever the file itself said.
package ingest

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cardata/cardb/cars"
	"github.com/pkg/errors"
)

// Load scans dir for per-year CSV files and returns the combined table,
// ascending by year with row order within each file preserved. It returns
// cars.ErrNoDataFound (wrapped) when no file in the year range exists. Any
// unreadable or malformed file fails the whole load; nothing is written
// anywhere by this package.
func Load(dir string) (*cars.Table, error) {
	combined := &cars.Table{}
	found := 0

	for year := cars.FirstYear; year <= cars.LastYear; year++ {
		filename := fmt.Sprintf("%d.csv", year)
		path := filepath.Join(dir, filename)

		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				slog.Info("file not found, skipping", "file", filename, "year", year)
				continue
			}
			return nil, errors.Wrapf(err, "stat %s", path)
		}

		columns, rows, err := readYearFile(path, year)
		if err != nil {
			return nil, err
		}
		combined.Append(columns, rows)
		found++
	}

	if found == 0 {
		return nil, errors.Wrapf(cars.ErrNoDataFound,
			"scanned %s for years %d-%d", dir, cars.FirstYear, cars.LastYear)
	}

	return combined, nil
}

// readYearFile parses one CSV file. The header row defines the columns; a
// year column is overwritten on every row, or appended as the last column
// when the header lacks one.
func readYearFile(path string, year int) ([]string, [][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing %s", path)
	}
	if len(records) == 0 {
		return nil, nil, errors.Errorf("parsing %s: missing header row", path)
	}

	header := records[0]
	yearCol := -1
	for i, name := range header {
		if name == cars.YearColumn {
			yearCol = i
			break
		}
	}

	columns := make([]string, len(header))
	copy(columns, header)
	if yearCol == -1 {
		yearCol = len(columns)
		columns = append(columns, cars.YearColumn)
	}

	rows := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]any, len(columns))
		for i, cell := range record {
			row[i] = cell
		}
		row[yearCol] = year
		rows = append(rows, row)
	}

	return columns, rows, nil
}
