package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
)

// sqliteConstraint is the primary SQLITE_CONSTRAINT result code. Extended
// codes (NOTNULL, CHECK, ...) carry it in their low byte.
const sqliteConstraint = 19

// Record is one row keyed by column name. Integer columns come back as
// int64, REAL as float64, text as string, absent values as nil.
type Record map[string]interface{}

// Int64 returns the named column as an int64, or 0 when absent.
func (r Record) Int64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

// Float64 returns the named column as a float64, or 0 when absent.
func (r Record) Float64(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

// String returns the named column as a string, or "" when absent.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Store is the table-agnostic row I/O primitive shared by every entity
// module. It has no schema awareness beyond the closed Table registry and
// performs no field-level validation; that lives in the entity services.
type Store struct {
	handle *sql.DB
}

func New(handle *sql.DB) *Store {
	return &Store{handle: handle}
}

// FetchAll returns every row of the table in natural storage order. An empty
// table yields an empty slice, never an error.
func (s *Store) FetchAll(ctx context.Context, t Table) ([]Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", t.selectList(), t.Name)
	return s.queryRecords(ctx, t, query)
}

// FetchByID returns the row matching id, or ErrNotFound.
func (s *Store) FetchByID(ctx context.Context, t Table, id int64) (Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", t.selectList(), t.Name, t.IDColumn)
	rows, err := s.queryRecords(ctx, t, query, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Insert appends one row and returns the auto-assigned identity. fields and
// values are positionally aligned; the identity column is never included.
func (s *Store) Insert(ctx context.Context, t Table, fields []string, values []interface{}) (int64, error) {
	if err := t.checkFields(fields, values); err != nil {
		return 0, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(fields)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(fields, ", "), placeholders)

	res, err := s.handle.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, classify(t, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", t.Name, err)
	}
	return id, nil
}

// Update overwrites the named fields on the row matching id. Zero rows
// affected is not an error; callers check existence via FetchByID first.
func (s *Store) Update(ctx context.Context, t Table, id int64, fields []string, values []interface{}) error {
	if err := t.checkFields(fields, values); err != nil {
		return err
	}

	assignments := make([]string, len(fields))
	for i, f := range fields {
		assignments[i] = f + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		t.Name, strings.Join(assignments, ", "), t.IDColumn)

	args := append(append([]interface{}{}, values...), id)
	if _, err := s.handle.ExecContext(ctx, query, args...); err != nil {
		return classify(t, err)
	}
	return nil
}

// Delete removes the row matching id. Deleting a nonexistent id is a silent
// no-op.
func (s *Store) Delete(ctx context.Context, t Table, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.Name, t.IDColumn)
	if _, err := s.handle.ExecContext(ctx, query, id); err != nil {
		return classify(t, err)
	}
	return nil
}

// Search returns rows whose column contains substring. Callers treat an
// empty query as "no filter" and use FetchAll instead of forwarding it here.
func (s *Store) Search(ctx context.Context, t Table, column, substring string) ([]Record, error) {
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("search %s: unknown column %q", t.Name, column)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIKE ?", t.selectList(), t.Name, column)
	return s.queryRecords(ctx, t, query, "%"+substring+"%")
}

func (t Table) selectList() string {
	return t.IDColumn + ", " + strings.Join(t.Columns, ", ")
}

func (t Table) checkFields(fields []string, values []interface{}) error {
	if len(fields) != len(values) {
		return fmt.Errorf("%s: %d fields but %d values", t.Name, len(fields), len(values))
	}
	for _, f := range fields {
		if !t.HasColumn(f) {
			return fmt.Errorf("%s: unknown column %q", t.Name, f)
		}
	}
	return nil
}

func (s *Store) queryRecords(ctx context.Context, t Table, query string, args ...interface{}) ([]Record, error) {
	rows, err := s.handle.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(t, err)
	}
	defer rows.Close()

	cols := append([]string{t.IDColumn}, t.Columns...)
	out := []Record{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.Name, err)
		}

		rec := make(Record, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				rec[c] = string(b)
			} else {
				rec[c] = values[i]
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(t, err)
	}
	return out, nil
}

// classify maps driver errors onto the store taxonomy.
func classify(t Table, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqliteConstraint {
		return &ConstraintError{Field: t.Name, Reason: err.Error()}
	}
	return fmt.Errorf("%s: %w: %v", t.Name, ErrUnavailable, err)
}
