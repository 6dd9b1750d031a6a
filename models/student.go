package models

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusComplete PaymentStatus = "COMPLETE"
	PaymentStatusOverdue  PaymentStatus = "OVERDUE"
)

// PaymentQuota is one billing installment of a student. DueDate is only
// meaningful while the quota is not COMPLETE.
type PaymentQuota struct {
	Sequence int           `json:"sequence" db:"sequence"`
	Amount   float64       `json:"amount" db:"amount"`
	Status   PaymentStatus `json:"status" db:"status"`
	DueDate  string        `json:"due_date" db:"due_date"`
}

// StudentProfile is the identity and billing snapshot for one student,
// keyed by phone number in E.164 format.
type StudentProfile struct {
	Phone    string         `json:"phone" db:"phone"`
	Name     string         `json:"name" db:"name"`
	Career   string         `json:"career" db:"career"`
	Status   string         `json:"status" db:"status"`
	Payments []PaymentQuota `json:"payments"`
}
