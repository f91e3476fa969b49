package analytics

import (
	"context"
	"database/sql"
	"fmt"
)

type repoSQLite struct {
	handle *sql.DB
}

func NewRepoSQLite(handle *sql.DB) Repository {
	return &repoSQLite{handle: handle}
}

func (r *repoSQLite) TopDiagnoses(ctx context.Context, limit int) ([]*DiagnosisCount, error) {
	rows, err := r.handle.QueryContext(ctx, `
		SELECT diagnosis, COUNT(*) AS n
		FROM medical_records
		GROUP BY diagnosis
		ORDER BY n DESC, diagnosis
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top diagnoses: %w", err)
	}
	defer rows.Close()

	out := []*DiagnosisCount{}
	for rows.Next() {
		var dc DiagnosisCount
		if err := rows.Scan(&dc.Diagnosis, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan diagnosis count: %w", err)
		}
		out = append(out, &dc)
	}
	return out, rows.Err()
}

func (r *repoSQLite) TreatmentByGender(ctx context.Context) ([]*TreatmentGenderCount, error) {
	// Left join: records pointing at a deleted or never-existing patient
	// still count, with an empty gender.
	rows, err := r.handle.QueryContext(ctx, `
		SELECT COALESCE(m.treatment, ''), COALESCE(p.gender, ''), COUNT(*) AS n
		FROM medical_records m
		LEFT JOIN patients p ON p.pat_id = m.pat_id
		GROUP BY m.treatment, p.gender
		ORDER BY n DESC, m.treatment, p.gender`)
	if err != nil {
		return nil, fmt.Errorf("treatment by gender: %w", err)
	}
	defer rows.Close()

	out := []*TreatmentGenderCount{}
	for rows.Next() {
		var tg TreatmentGenderCount
		if err := rows.Scan(&tg.Treatment, &tg.Gender, &tg.Count); err != nil {
			return nil, fmt.Errorf("scan treatment count: %w", err)
		}
		out = append(out, &tg)
	}
	return out, rows.Err()
}

func (r *repoSQLite) RecordDates(ctx context.Context) ([]string, error) {
	rows, err := r.handle.QueryContext(ctx, `
		SELECT COALESCE(record_date, '') FROM medical_records`)
	if err != nil {
		return nil, fmt.Errorf("record dates: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan record date: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
