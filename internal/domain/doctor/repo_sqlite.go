package doctor

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

func fromRecord(r store.Record) *Doctor {
	return &Doctor{
		ID:        r.Int64("doc_id"),
		Name:      r.String("name"),
		Specialty: r.String("specialty"),
		DeptID:    r.Int64("dept_id"),
		Phone:     r.String("phone"),
		Email:     r.String("email"),
	}
}

func fieldValues(d *Doctor) ([]string, []interface{}) {
	return []string{"name", "specialty", "dept_id", "phone", "email"},
		[]interface{}{d.Name, d.Specialty, d.DeptID, d.Phone, d.Email}
}

func (r *repoSQLite) List(ctx context.Context) ([]*Doctor, error) {
	recs, err := r.store.FetchAll(ctx, store.Doctors)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	rec, err := r.store.FetchByID(ctx, store.Doctors, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *repoSQLite) Search(ctx context.Context, substring string) ([]*Doctor, error) {
	recs, err := r.store.Search(ctx, store.Doctors, store.Doctors.SearchColumn, substring)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) Create(ctx context.Context, d *Doctor) error {
	fields, values := fieldValues(d)
	id, err := r.store.Insert(ctx, store.Doctors, fields, values)
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func (r *repoSQLite) Update(ctx context.Context, d *Doctor) error {
	fields, values := fieldValues(d)
	return r.store.Update(ctx, store.Doctors, d.ID, fields, values)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, store.Doctors, id)
}

func fromRecords(recs []store.Record) []*Doctor {
	out := make([]*Doctor, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}
