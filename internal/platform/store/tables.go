package store

// Table describes one entity table: its name, identity column, and the fixed
// set of non-identity columns. Descriptors are declared at compile time and
// are the only names ever interpolated into SQL; request input never reaches
// a table or column position.
type Table struct {
	Name     string
	IDColumn string
	Columns  []string
	// SearchColumn is the text column substring search runs against.
	SearchColumn string
}

// HasColumn reports whether name is one of the table's non-identity columns.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// The closed registry. Entity modules bind to exactly one of these.
var (
	Patients = Table{
		Name:         "patients",
		IDColumn:     "pat_id",
		Columns:      []string{"name", "age", "gender", "phone", "address", "email"},
		SearchColumn: "name",
	}

	Doctors = Table{
		Name:         "doctors",
		IDColumn:     "doc_id",
		Columns:      []string{"name", "specialty", "dept_id", "phone", "email"},
		SearchColumn: "name",
	}

	Appointments = Table{
		Name:         "appointments",
		IDColumn:     "app_id",
		Columns:      []string{"pat_id", "doc_id", "app_date", "app_time", "status"},
		SearchColumn: "app_date",
	}

	MedicalRecords = Table{
		Name:         "medical_records",
		IDColumn:     "record_id",
		Columns:      []string{"pat_id", "doc_id", "diagnosis", "treatment", "prescription", "record_date"},
		SearchColumn: "diagnosis",
	}

	Billings = Table{
		Name:         "billings",
		IDColumn:     "bill_id",
		Columns:      []string{"pat_id", "amount", "details", "payment_status"},
		SearchColumn: "details",
	}
)
