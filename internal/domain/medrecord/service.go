package medrecord

import (
	"context"
	"strings"
	"time"

	"github.com/hms/hms/internal/platform/store"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) validate(m *MedicalRecord) error {
	if m.PatID < 1 {
		return store.Violation("pat_id", "is required")
	}
	if m.DocID < 1 {
		return store.Violation("doc_id", "is required")
	}
	if strings.TrimSpace(m.Diagnosis) == "" {
		return store.Violation("diagnosis", "is required")
	}
	if m.RecordDate == "" {
		m.RecordDate = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, m.RecordDate); err != nil {
		return store.Violation("record_date", "must be a date in YYYY-MM-DD form")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, m *MedicalRecord) error {
	if err := s.validate(m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id int64) (*MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*MedicalRecord, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]*MedicalRecord, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) Update(ctx context.Context, m *MedicalRecord) error {
	if err := s.validate(m); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, m.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
