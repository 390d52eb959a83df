package domain

import "time"

// Supply incoming blood supply record (supply table, append-only)
type Supply struct {
	SupplyID   string    `db:"supply_id" json:"supply_id"` // unique
	HospitalID string    `db:"hosp_id" json:"hosp_id"`     // NOT NULL, FK hospitals
	BloodGroup string    `db:"blood_grp" json:"blood_grp"`
	Quantity   int       `db:"quantity" json:"quantity"` // 1..50
	SupplyDate time.Time `db:"supply_date" json:"supply_date"`
}

// SupplyWithHospital supply row joined with the hospital name (list views).
type SupplyWithHospital struct {
	Supply
	HospitalName string `db:"hosp_name" json:"hosp_name"`
}
