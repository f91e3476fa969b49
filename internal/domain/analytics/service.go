package analytics

import (
	"context"
	"sort"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	defaultTopN = 10
	maxTopN     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) TopDiagnoses(ctx context.Context, limit int) ([]*DiagnosisCount, error) {
	if limit <= 0 {
		limit = defaultTopN
	}
	if limit > maxTopN {
		limit = maxTopN
	}
	return s.repo.TopDiagnoses(ctx, limit)
}

func (s *Service) TreatmentByGender(ctx context.Context) ([]*TreatmentGenderCount, error) {
	return s.repo.TreatmentByGender(ctx)
}

// DailyTrend counts records per calendar day. Dates that do not parse are
// dropped from the series rather than failing the whole chart.
func (s *Service) DailyTrend(ctx context.Context) ([]*DailyCount, error) {
	dates, err := s.repo.RecordDates(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	for _, d := range dates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			continue
		}
		counts[d]++
	}

	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]*DailyCount, 0, len(days))
	for _, d := range days {
		out = append(out, &DailyCount{Date: d, Count: counts[d]})
	}
	return out, nil
}
