package patient

import (
	"context"

	"github.com/hms/hms/internal/platform/store"
)

// repoSQLite binds the generic record store to the patients table.
type repoSQLite struct {
	store *store.Store
}

func NewRepoSQLite(s *store.Store) Repository {
	return &repoSQLite{store: s}
}

func fromRecord(r store.Record) *Patient {
	return &Patient{
		ID:      r.Int64("pat_id"),
		Name:    r.String("name"),
		Age:     r.Int64("age"),
		Gender:  r.String("gender"),
		Phone:   r.String("phone"),
		Address: r.String("address"),
		Email:   r.String("email"),
	}
}

func fieldValues(p *Patient) ([]string, []interface{}) {
	return []string{"name", "age", "gender", "phone", "address", "email"},
		[]interface{}{p.Name, p.Age, p.Gender, p.Phone, p.Address, p.Email}
}

func (r *repoSQLite) List(ctx context.Context) ([]*Patient, error) {
	recs, err := r.store.FetchAll(ctx, store.Patients)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Patient, error) {
	rec, err := r.store.FetchByID(ctx, store.Patients, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *repoSQLite) Search(ctx context.Context, substring string) ([]*Patient, error) {
	recs, err := r.store.Search(ctx, store.Patients, store.Patients.SearchColumn, substring)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) Create(ctx context.Context, p *Patient) error {
	fields, values := fieldValues(p)
	id, err := r.store.Insert(ctx, store.Patients, fields, values)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *repoSQLite) Update(ctx context.Context, p *Patient) error {
	fields, values := fieldValues(p)
	return r.store.Update(ctx, store.Patients, p.ID, fields, values)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, store.Patients, id)
}

func fromRecords(recs []store.Record) []*Patient {
	out := make([]*Patient, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}
