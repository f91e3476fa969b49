package patient

import (
	"context"
	"strings"

	"github.com/hms/hms/internal/platform/store"
)

var validGenders = map[string]bool{
	"Male": true, "Female": true, "Other": true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validate runs the caller-side field checks. Nothing that fails here ever
// reaches the store.
func validate(p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return store.Violation("name", "is required")
	}
	if strings.TrimSpace(p.Phone) == "" {
		return store.Violation("phone", "is required")
	}
	if p.Age < 0 || p.Age > 120 {
		return store.Violation("age", "must be between 0 and 120")
	}
	if !validGenders[p.Gender] {
		return store.Violation("gender", "must be Male, Female, or Other")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// Search treats an empty query as "no filter" and falls back to the full
// list, so a blank search box never masks every row.
func (s *Service) Search(ctx context.Context, query string) ([]*Patient, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// Update is a full-row overwrite of the non-identity fields. The target must
// exist; the store itself treats a missing id as a no-op.
func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, p.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

// Delete is idempotent; deleting an id that does not exist succeeds silently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
