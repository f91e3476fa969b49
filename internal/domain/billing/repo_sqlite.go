package billing

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

func fromRecord(r store.Record) *Bill {
	return &Bill{
		ID:            r.Int64("bill_id"),
		PatID:         r.Int64("pat_id"),
		Amount:        r.Float64("amount"),
		Details:       r.String("details"),
		PaymentStatus: r.String("payment_status"),
	}
}

func fieldValues(b *Bill) ([]string, []interface{}) {
	return []string{"pat_id", "amount", "details", "payment_status"},
		[]interface{}{b.PatID, b.Amount, b.Details, b.PaymentStatus}
}

func (r *repoSQLite) List(ctx context.Context) ([]*Bill, error) {
	recs, err := r.store.FetchAll(ctx, store.Billings)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Bill, error) {
	rec, err := r.store.FetchByID(ctx, store.Billings, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *repoSQLite) Search(ctx context.Context, substring string) ([]*Bill, error) {
	recs, err := r.store.Search(ctx, store.Billings, store.Billings.SearchColumn, substring)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) Create(ctx context.Context, b *Bill) error {
	fields, values := fieldValues(b)
	id, err := r.store.Insert(ctx, store.Billings, fields, values)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *repoSQLite) Update(ctx context.Context, b *Bill) error {
	fields, values := fieldValues(b)
	return r.store.Update(ctx, store.Billings, b.ID, fields, values)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, store.Billings, id)
}

func fromRecords(recs []store.Record) []*Bill {
	out := make([]*Bill, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}
