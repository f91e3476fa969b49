package analytics

import "context"

// Repository is the read-only aggregation surface over medical records and
// patients. There is no write path.
type Repository interface {
	TopDiagnoses(ctx context.Context, limit int) ([]*DiagnosisCount, error)
	TreatmentByGender(ctx context.Context) ([]*TreatmentGenderCount, error)
	RecordDates(ctx context.Context) ([]string, error)
}
