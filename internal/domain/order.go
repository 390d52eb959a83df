package domain

import "time"

// Order status values. Pending is the only non-terminal state:
// Pending -> Fulfilled | Cancelled, no further transitions.
const (
	OrderStatusPending   = "Pending"
	OrderStatusFulfilled = "Fulfilled"
	OrderStatusCancelled = "Cancelled"
)

// Order hospital blood order (orders table)
type Order struct {
	OrderID    string    `db:"order_id" json:"order_id"` // unique
	HospitalID string    `db:"hosp_id" json:"hosp_id"`   // NOT NULL, FK hospitals
	BloodGroup string    `db:"blood_grp" json:"blood_grp"`
	Quantity   int       `db:"quantity" json:"quantity"` // 1..50
	Status     string    `db:"status" json:"status"`
	OrderDate  time.Time `db:"order_date" json:"order_date"`
}

// OrderWithHospital order row joined with the hospital name (list views).
type OrderWithHospital struct {
	Order
	HospitalName string `db:"hosp_name" json:"hosp_name"`
}
