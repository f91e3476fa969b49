package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/hms/hms/internal/platform/store"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var validStatuses = map[string]bool{
	"Scheduled": true, "Confirmed": true, "Completed": true, "Cancelled": true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validate checks the references and normalizes date, time, and status to
// their canonical stored forms.
func validate(a *Appointment) error {
	if a.PatID < 1 {
		return store.Violation("pat_id", "is required")
	}
	if a.DocID < 1 {
		return store.Violation("doc_id", "is required")
	}

	if _, err := time.Parse(dateLayout, a.Date); err != nil {
		return store.Violation("app_date", "must be a date in YYYY-MM-DD form")
	}

	// The time field accepts HH:MM or HH:MM:SS and is stored as HH:MM:SS.
	parsed, err := time.Parse(timeLayout, a.Time)
	if err != nil {
		parsed, err = time.Parse("15:04", a.Time)
		if err != nil {
			return store.Violation("app_time", "must be a time in HH:MM or HH:MM:SS form")
		}
	}
	a.Time = parsed.Format(timeLayout)

	if a.Status == "" {
		a.Status = "Scheduled"
	}
	if !validStatuses[a.Status] {
		return store.Violation("status", "must be Scheduled, Confirmed, Completed, or Cancelled")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if err := validate(a); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]*Appointment, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if err := validate(a); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, a.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
