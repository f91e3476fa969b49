package analytics

import (
	"context"
	"testing"
)

type mockRepo struct {
	diagnoses []*DiagnosisCount
	genders   []*TreatmentGenderCount
	dates     []string

	lastLimit int
}

func (m *mockRepo) TopDiagnoses(_ context.Context, limit int) ([]*DiagnosisCount, error) {
	m.lastLimit = limit
	if limit < len(m.diagnoses) {
		return m.diagnoses[:limit], nil
	}
	return m.diagnoses, nil
}

func (m *mockRepo) TreatmentByGender(_ context.Context) ([]*TreatmentGenderCount, error) {
	return m.genders, nil
}

func (m *mockRepo) RecordDates(_ context.Context) ([]string, error) {
	return m.dates, nil
}

func TestService_TopDiagnoses_LimitClamped(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	if _, err := svc.TopDiagnoses(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLimit != defaultTopN {
		t.Errorf("expected default limit %d, got %d", defaultTopN, repo.lastLimit)
	}

	if _, err := svc.TopDiagnoses(context.Background(), 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLimit != maxTopN {
		t.Errorf("expected clamped limit %d, got %d", maxTopN, repo.lastLimit)
	}
}

func TestService_TopDiagnoses_EmptyTable(t *testing.T) {
	svc := NewService(&mockRepo{})

	out, err := svc.TopDiagnoses(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty result, got %d rows", len(out))
	}
}

func TestService_DailyTrend_DropsUnparseableDates(t *testing.T) {
	repo := &mockRepo{dates: []string{
		"2024-06-01",
		"2024-06-01",
		"not-a-date",
		"2024-06-02",
		"06/03/2024",
	}}
	svc := NewService(repo)

	out, err := svc.DailyTrend(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 days, got %d", len(out))
	}
	if out[0].Date != "2024-06-01" || out[0].Count != 2 {
		t.Errorf("expected 2024-06-01 x2 first, got %s x%d", out[0].Date, out[0].Count)
	}
	if out[1].Date != "2024-06-02" || out[1].Count != 1 {
		t.Errorf("expected 2024-06-02 x1 second, got %s x%d", out[1].Date, out[1].Count)
	}
}

func TestService_DailyTrend_Empty(t *testing.T) {
	svc := NewService(&mockRepo{})

	out, err := svc.DailyTrend(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty series, got %d points", len(out))
	}
}
