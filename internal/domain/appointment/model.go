package appointment

// Appointment maps to the appointments table. pat_id and doc_id are plain
// numeric references; their existence is never checked against the patients
// or doctors tables.
type Appointment struct {
	ID     int64  `json:"app_id"`
	PatID  int64  `json:"pat_id"`
	DocID  int64  `json:"doc_id"`
	Date   string `json:"app_date"`
	Time   string `json:"app_time"`
	Status string `json:"status"`
}
