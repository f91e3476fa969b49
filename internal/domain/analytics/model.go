package analytics

// DiagnosisCount is one row of the top-diagnoses frequency chart.
type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis"`
	Count     int64  `json:"count"`
}

// TreatmentGenderCount is one cell of the treatment-by-gender tally. Records
// whose pat_id matches no patient appear with an empty gender.
type TreatmentGenderCount struct {
	Treatment string `json:"treatment"`
	Gender    string `json:"gender"`
	Count     int64  `json:"count"`
}

// DailyCount is one point of the records-per-day time series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
