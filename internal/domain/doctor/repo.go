package doctor

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Search(ctx context.Context, substring string) ([]*Doctor, error)
	Create(ctx context.Context, d *Doctor) error
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id int64) error
}
