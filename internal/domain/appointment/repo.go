package appointment

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	Search(ctx context.Context, substring string) ([]*Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int64) error
}
