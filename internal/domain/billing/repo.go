package billing

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Bill, error)
	GetByID(ctx context.Context, id int64) (*Bill, error)
	Search(ctx context.Context, substring string) ([]*Bill, error)
	Create(ctx context.Context, b *Bill) error
	Update(ctx context.Context, b *Bill) error
	Delete(ctx context.Context, id int64) error
}
