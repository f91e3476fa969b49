package medrecord

// MedicalRecord maps to the medical_records table. record_date defaults to
// the creation date when the caller leaves it blank.
type MedicalRecord struct {
	ID           int64  `json:"record_id"`
	PatID        int64  `json:"pat_id"`
	DocID        int64  `json:"doc_id"`
	Diagnosis    string `json:"diagnosis"`
	Treatment    string `json:"treatment"`
	Prescription string `json:"prescription"`
	RecordDate   string `json:"record_date"`
}
