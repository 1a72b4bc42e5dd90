package storage

import (
	"fmt"
	"strings"

	"github.com/cardata/cardb/cars"
	"github.com/pkg/errors"
)

// insertBatchSize caps rows per INSERT statement. SQLite limits a statement
// to 999 bound variables by default, so batches must stay small enough for
// any plausible column count.
const insertBatchSize = 100

// ReplaceAllCars drops and recreates the all_cars table from t and loads
// every row, all inside one transaction. The recreated schema mirrors t's
// columns exactly: year is INTEGER, everything else TEXT. Prior contents and
// schema of the table are discarded.
func (s *Store) ReplaceAllCars(t *cars.Table) error {
	if len(t.Columns) == 0 {
		return errors.New("combined table has no columns")
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, cars.TableName)); err != nil {
		return errors.Wrap(err, "dropping previous table")
	}

	defs := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		typ := "TEXT"
		if col == cars.YearColumn {
			typ = "INTEGER"
		}
		defs[i] = fmt.Sprintf("%q %s", col, typ)
	}
	create := fmt.Sprintf(`CREATE TABLE %s (%s)`, cars.TableName, strings.Join(defs, ", "))
	if _, err := tx.Exec(create); err != nil {
		return errors.Wrap(err, "creating table")
	}

	rowTuple := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ") + ")"

	for start := 0; start < len(t.Rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(t.Rows) {
			end = len(t.Rows)
		}
		batch := t.Rows[start:end]

		tuples := make([]string, len(batch))
		args := make([]any, 0, len(batch)*len(t.Columns))
		for i, row := range batch {
			tuples[i] = rowTuple
			args = append(args, row...)
		}

		insert := fmt.Sprintf(`INSERT INTO %s VALUES %s`, cars.TableName, strings.Join(tuples, ", "))
		if _, err := tx.Exec(insert, args...); err != nil {
			return errors.Wrapf(err, "inserting rows %d-%d", start, end-1)
		}
	}

	return errors.Wrap(tx.Commit(), "committing")
}

// CountCars reports the number of rows currently in the all_cars table.
func (s *Store) CountCars() (int, error) {
	var n int
	err := s.conn.Get(&n, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, cars.TableName))
	return n, errors.Wrap(err, "counting rows")
}
