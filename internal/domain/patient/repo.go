package patient

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Search(ctx context.Context, substring string) ([]*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) error
}
