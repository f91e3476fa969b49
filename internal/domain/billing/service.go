package billing

import (
	"context"
	"strings"

	"github.com/hms/hms/internal/platform/store"
)

var validPaymentStatuses = map[string]bool{
	"Pending": true, "Paid": true, "Overdue": true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(b *Bill) error {
	if b.PatID < 1 {
		return store.Violation("pat_id", "is required")
	}
	if b.Amount < 0 {
		return store.Violation("amount", "must not be negative")
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = "Pending"
	}
	if !validPaymentStatuses[b.PaymentStatus] {
		return store.Violation("payment_status", "must be Pending, Paid, or Overdue")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, b *Bill) error {
	if err := validate(b); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id int64) (*Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Bill, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]*Bill, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) Update(ctx context.Context, b *Bill) error {
	if err := validate(b); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, b.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
