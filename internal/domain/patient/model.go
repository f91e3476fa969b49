package patient

// Patient maps to the patients table. The id is assigned by the store on
// insert and never supplied by the caller.
type Patient struct {
	ID      int64  `json:"pat_id"`
	Name    string `json:"name"`
	Age     int64  `json:"age"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}
