package models

// SponsorshipType defines the closed set of scholarship kinds a student can hold.
type SponsorshipType string

const (
	SponsorshipNone    SponsorshipType = "none"
	SponsorshipFull    SponsorshipType = "full"
	SponsorshipPartial SponsorshipType = "partial"
	SponsorshipOther   SponsorshipType = "other"
)

// Valid reports whether the value is one of the known sponsorship types.
func (s SponsorshipType) Valid() bool {
	switch s {
	case SponsorshipNone, SponsorshipFull, SponsorshipPartial, SponsorshipOther:
		return true
	}
	return false
}

// InvoiceStatus defines the status of an invoice
type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceUnpaid, InvoicePartial, InvoicePaid:
		return true
	}
	return false
}

// PaymentStatus defines the status of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// PaymentMethod defines how a payment was received
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodPOS      PaymentMethod = "pos"
	MethodOnline   PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodPOS, MethodOnline:
		return true
	}
	return false
}
