package source

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/sift/internal/query"
)

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads every row of one table as a tuple. SQL NULL becomes an
// absent attribute, keeping the engine's presence semantics meaningful for
// sparse columns.
func LoadSQLite(path, table string) ([]query.Tuple, error) {
	if !identRegex.MatchString(table) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %q", table))
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var tuples []query.Tuple
	for rows.Next() {
		values := make([]any, len(cols))
		scan := make([]any, len(cols))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, err
		}

		t := query.Tuple{}
		for i, col := range cols {
			switch v := values[i].(type) {
			case nil:
				// absent, not null
			case []byte:
				t[col] = string(v)
			default:
				t[col] = v
			}
		}
		tuples = append(tuples, t)
	}
	return tuples, rows.Err()
}
