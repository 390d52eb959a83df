package domain

// StorageLot one inventory row of the ledger (storage_house table).
// A lot holds units of a single blood group; quantity never goes below zero
// (enforced by a CHECK constraint and by the GREATEST(0, ...) clamp on
// manual removal).
type StorageLot struct {
	StorageID  string `db:"storage_id" json:"storage_id"` // unique; supply-derived lots use "SUP<supply-id>"
	BloodGroup string `db:"blood_grp" json:"blood_grp"`   // NOT NULL
	Quantity   int    `db:"quantity" json:"quantity"`     // NOT NULL, >= 0
}

// GroupAvailability aggregate stock per blood group (the ledger view).
type GroupAvailability struct {
	BloodGroup string `db:"blood_grp" json:"blood_grp"`
	TotalUnits int    `db:"total_units" json:"total_units"`
}
