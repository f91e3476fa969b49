package doctor

// Doctor maps to the doctors table. dept_id is a plain number; no department
// table exists to check it against.
type Doctor struct {
	ID        int64  `json:"doc_id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	DeptID    int64  `json:"dept_id"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}
