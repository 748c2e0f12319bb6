package domain

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
)

// Invoice holds the amount in integer cents. The date is a calendar date
// without a time component, formatted 2006-01-02.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
	Date       string
}

type User struct {
	ID       int64
	Email    string
	Password string
}
