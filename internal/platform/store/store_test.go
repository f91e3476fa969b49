package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	handle, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	handle.SetMaxOpenConns(1)
	t.Cleanup(func() { handle.Close() })

	if err := EnsureSchema(context.Background(), handle); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return New(handle), handle
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	_, handle := newTestStore(t)
	// Second run against the same file must be a no-op, not an error.
	if err := EnsureSchema(context.Background(), handle); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
}

func TestInsert_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, Patients,
		[]string{"name", "age", "gender", "phone", "address", "email"},
		[]interface{}{"Jane Doe", 34, "Female", "555-0100", "12 Elm St", "jane@example.com"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id != 1 {
		t.Errorf("expected first id 1, got %d", id)
	}

	rec, err := s.FetchByID(ctx, Patients, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if rec.Int64("pat_id") != 1 {
		t.Errorf("expected pat_id 1, got %d", rec.Int64("pat_id"))
	}
	if rec.String("name") != "Jane Doe" {
		t.Errorf("expected name Jane Doe, got %q", rec.String("name"))
	}
	if rec.Int64("age") != 34 {
		t.Errorf("expected age 34, got %d", rec.Int64("age"))
	}
	if rec.String("gender") != "Female" {
		t.Errorf("expected gender Female, got %q", rec.String("gender"))
	}
	if rec.String("phone") != "555-0100" {
		t.Errorf("expected phone 555-0100, got %q", rec.String("phone"))
	}
	if rec.String("address") != "12 Elm St" {
		t.Errorf("expected address 12 Elm St, got %q", rec.String("address"))
	}
	if rec.String("email") != "jane@example.com" {
		t.Errorf("expected email jane@example.com, got %q", rec.String("email"))
	}
}

func TestInsert_IdentityMonotonic(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	fields := []string{"name", "age", "gender", "phone", "address", "email"}
	first, err := s.Insert(ctx, Patients, fields, []interface{}{"A", 1, "Other", "1", "", ""})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := s.Insert(ctx, Patients, fields, []interface{}{"B", 2, "Other", "2", "", ""})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if second <= first {
		t.Errorf("expected ids to increase, got %d then %d", first, second)
	}

	// Ids are never reused after a delete.
	if err := s.Delete(ctx, Patients, second); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third, err := s.Insert(ctx, Patients, fields, []interface{}{"C", 3, "Other", "3", "", ""})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if third <= second {
		t.Errorf("expected id after delete to exceed %d, got %d", second, third)
	}
}

func TestInsert_NotNullViolation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, Doctors,
		[]string{"name", "specialty", "dept_id", "phone", "email"},
		[]interface{}{nil, "Cardiology", 1, "", ""})
	if err == nil {
		t.Fatal("expected constraint violation for nil name")
	}
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("expected ErrConstraint, got %v", err)
	}

	// No row was created.
	recs, err := s.FetchAll(ctx, Doctors)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected 0 rows, got %d", len(recs))
	}
}

func TestInsert_UnknownColumnRejected(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Insert(context.Background(), Patients,
		[]string{"name; DROP TABLE patients"}, []interface{}{"x"})
	if err == nil {
		t.Fatal("expected unknown column to be rejected")
	}
}

func TestInsert_FieldValueMismatch(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Insert(context.Background(), Patients,
		[]string{"name", "phone"}, []interface{}{"x"})
	if err == nil {
		t.Fatal("expected mismatched field/value lengths to be rejected")
	}
}

func TestFetchAll_EmptyTable(t *testing.T) {
	s, _ := newTestStore(t)

	recs, err := s.FetchAll(context.Background(), Billings)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty slice, got %d rows", len(recs))
	}
}

func TestFetchByID_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.FetchByID(context.Background(), Patients, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, Appointments,
		[]string{"pat_id", "doc_id", "app_date", "app_time", "status"},
		[]interface{}{1, 1, "2024-06-01", "10:30:00", "Scheduled"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := s.Delete(ctx, Appointments, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.Delete(ctx, Appointments, id); err != nil {
		t.Fatalf("second delete should be a silent no-op: %v", err)
	}
	if _, err := s.FetchByID(ctx, Appointments, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an id that never existed succeeds and changes nothing.
	if err := s.Delete(ctx, Appointments, 999); err != nil {
		t.Fatalf("delete of nonexistent id: %v", err)
	}
	recs, err := s.FetchAll(ctx, Appointments)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected 0 rows, got %d", len(recs))
	}
}

func TestUpdate_FullOverwrite(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	fields := []string{"pat_id", "doc_id", "diagnosis", "treatment", "prescription", "record_date"}
	id, err := s.Insert(ctx, MedicalRecords, fields,
		[]interface{}{1, 2, "Flu", "Rest", "Paracetamol", "2024-06-01"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	err = s.Update(ctx, MedicalRecords, id, fields,
		[]interface{}{1, 2, "Flu", "Rest and fluids", "Paracetamol", "2024-06-01"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, err := s.FetchByID(ctx, MedicalRecords, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if rec.String("treatment") != "Rest and fluids" {
		t.Errorf("expected updated treatment, got %q", rec.String("treatment"))
	}
	if rec.String("diagnosis") != "Flu" {
		t.Errorf("diagnosis changed unexpectedly: %q", rec.String("diagnosis"))
	}
	if rec.String("prescription") != "Paracetamol" {
		t.Errorf("prescription changed unexpectedly: %q", rec.String("prescription"))
	}
}

func TestUpdate_MissingIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Update(context.Background(), Billings, 7,
		[]string{"pat_id", "amount", "details", "payment_status"},
		[]interface{}{1, 10.0, "", "Pending"})
	if err != nil {
		t.Fatalf("update of missing id should not error at the store layer: %v", err)
	}
}

func TestSearch_Containment(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	fields := []string{"name", "age", "gender", "phone", "address", "email"}
	for _, name := range []string{"Jane Doe", "Ann Lee", "Bob Smith"} {
		if _, err := s.Insert(ctx, Patients, fields, []interface{}{name, 30, "Other", "555", "", ""}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	recs, err := s.Search(ctx, Patients, "name", "an")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	got := map[string]bool{}
	for _, r := range recs {
		got[r.String("name")] = true
	}
	if !got["Jane Doe"] || !got["Ann Lee"] {
		t.Errorf("expected Jane Doe and Ann Lee in results, got %v", got)
	}
	if got["Bob Smith"] {
		t.Error("Bob Smith should not match substring \"an\"")
	}
}

func TestSearch_UnknownColumnRejected(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Search(context.Background(), Patients, "name OR 1=1", "x")
	if err == nil {
		t.Fatal("expected unknown search column to be rejected")
	}
}

func TestDefaults_AppliedByStore(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// status omitted from the field list: the schema default applies.
	id, err := s.Insert(ctx, Appointments,
		[]string{"pat_id", "doc_id", "app_date", "app_time"},
		[]interface{}{1, 1, "2024-06-01", "10:30:00"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	rec, err := s.FetchByID(ctx, Appointments, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if rec.String("status") != "Scheduled" {
		t.Errorf("expected default status Scheduled, got %q", rec.String("status"))
	}
}
