package domain

// Hospital ordering/supplying hospital (hospitals table)
type Hospital struct {
	HospitalID string `db:"hosp_id" json:"hosp_id"`     // alphanumeric, unique
	Name       string `db:"hosp_name" json:"hosp_name"` // NOT NULL
	Location   string `db:"location" json:"location"`   // NOT NULL
}
