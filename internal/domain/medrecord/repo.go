package medrecord

import "context"

type Repository interface {
	List(ctx context.Context) ([]*MedicalRecord, error)
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	Search(ctx context.Context, substring string) ([]*MedicalRecord, error)
	Create(ctx context.Context, m *MedicalRecord) error
	Update(ctx context.Context, m *MedicalRecord) error
	Delete(ctx context.Context, id int64) error
}
