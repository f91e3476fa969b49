package doctor

import (
	"context"
	"strings"

	"github.com/hms/hms/internal/platform/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(d *Doctor) error {
	if strings.TrimSpace(d.Name) == "" {
		return store.Violation("name", "is required")
	}
	if d.DeptID < 1 {
		return store.Violation("dept_id", "must be at least 1")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if err := validate(d); err != nil {
		return err
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]*Doctor, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if err := validate(d); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, d.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
