package billing

// Bill maps to the billings table.
type Bill struct {
	ID            int64   `json:"bill_id"`
	PatID         int64   `json:"pat_id"`
	Amount        float64 `json:"amount"`
	Details       string  `json:"details"`
	PaymentStatus string  `json:"payment_status"`
}
