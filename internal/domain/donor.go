package domain

// Donor registered blood donor (donors table)
// Donors are created by the registration form and never updated or deleted.
type Donor struct {
	DonorID    string `db:"dona_id" json:"dona_id"`           // alphanumeric, unique
	DonorName  string `db:"dona_name" json:"dona_name"`       // NOT NULL
	BloodGroup string `db:"blood_grp" json:"blood_grp"`       // NOT NULL, one of 8 ABO/Rh codes
	Contact    string `db:"dona_contact" json:"dona_contact"` // NOT NULL, 10-digit numeric string
}
