package appointment

import (
	"context"

	"github.com/hms/hms/internal/platform/store"
)

type repoSQLite struct {
	store *store.Store
}

func NewRepoSQLite(s *store.Store) Repository {
	return &repoSQLite{store: s}
}

func fromRecord(r store.Record) *Appointment {
	return &Appointment{
		ID:     r.Int64("app_id"),
		PatID:  r.Int64("pat_id"),
		DocID:  r.Int64("doc_id"),
		Date:   r.String("app_date"),
		Time:   r.String("app_time"),
		Status: r.String("status"),
	}
}

func fieldValues(a *Appointment) ([]string, []interface{}) {
	return []string{"pat_id", "doc_id", "app_date", "app_time", "status"},
		[]interface{}{a.PatID, a.DocID, a.Date, a.Time, a.Status}
}

func (r *repoSQLite) List(ctx context.Context) ([]*Appointment, error) {
	recs, err := r.store.FetchAll(ctx, store.Appointments)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	rec, err := r.store.FetchByID(ctx, store.Appointments, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *repoSQLite) Search(ctx context.Context, substring string) ([]*Appointment, error) {
	recs, err := r.store.Search(ctx, store.Appointments, store.Appointments.SearchColumn, substring)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) Create(ctx context.Context, a *Appointment) error {
	fields, values := fieldValues(a)
	id, err := r.store.Insert(ctx, store.Appointments, fields, values)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *repoSQLite) Update(ctx context.Context, a *Appointment) error {
	fields, values := fieldValues(a)
	return r.store.Update(ctx, store.Appointments, a.ID, fields, values)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, store.Appointments, id)
}

func fromRecords(recs []store.Record) []*Appointment {
	out := make([]*Appointment, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}
