package medrecord

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

func fromRecord(r store.Record) *MedicalRecord {
	return &MedicalRecord{
		ID:           r.Int64("record_id"),
		PatID:        r.Int64("pat_id"),
		DocID:        r.Int64("doc_id"),
		Diagnosis:    r.String("diagnosis"),
		Treatment:    r.String("treatment"),
		Prescription: r.String("prescription"),
		RecordDate:   r.String("record_date"),
	}
}

func fieldValues(m *MedicalRecord) ([]string, []interface{}) {
	return []string{"pat_id", "doc_id", "diagnosis", "treatment", "prescription", "record_date"},
		[]interface{}{m.PatID, m.DocID, m.Diagnosis, m.Treatment, m.Prescription, m.RecordDate}
}

func (r *repoSQLite) List(ctx context.Context) ([]*MedicalRecord, error) {
	recs, err := r.store.FetchAll(ctx, store.MedicalRecords)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	rec, err := r.store.FetchByID(ctx, store.MedicalRecords, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *repoSQLite) Search(ctx context.Context, substring string) ([]*MedicalRecord, error) {
	recs, err := r.store.Search(ctx, store.MedicalRecords, store.MedicalRecords.SearchColumn, substring)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *repoSQLite) Create(ctx context.Context, m *MedicalRecord) error {
	fields, values := fieldValues(m)
	id, err := r.store.Insert(ctx, store.MedicalRecords, fields, values)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *repoSQLite) Update(ctx context.Context, m *MedicalRecord) error {
	fields, values := fieldValues(m)
	return r.store.Update(ctx, store.MedicalRecords, m.ID, fields, values)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, store.MedicalRecords, id)
}

func fromRecords(recs []store.Record) []*MedicalRecord {
	out := make([]*MedicalRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}
