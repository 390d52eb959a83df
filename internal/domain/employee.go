package domain

import "time"

// Employee blood-bank staff member (employees table)
// EmployeeID is generated by the service (uuid); rows are insert-only.
type Employee struct {
	EmployeeID  string    `db:"emp_id" json:"emp_id"`
	Name        string    `db:"emp_name" json:"emp_name"`         // NOT NULL
	Email       string    `db:"email" json:"email"`               // NOT NULL
	Salary      int       `db:"salary" json:"salary"`             // NOT NULL, >= 0
	Designation string    `db:"designation" json:"designation"`   // NOT NULL, enumerated
	JoiningDate time.Time `db:"joining_date" json:"joining_date"` // NOT NULL
	Contact     string    `db:"bb_contact" json:"bb_contact"`     // NOT NULL, 10-digit numeric string
	BloodBankID int       `db:"bb_id" json:"bb_id"`               // NOT NULL
	Address     string    `db:"bb_address" json:"bb_address"`     // NOT NULL
}

// Designations the choices the form offers.
var Designations = []string{"Manager", "Lab Technician", "Nurse", "Receptionist", "Other"}
