package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice carries the billing data a QR bill is rendered from. The
// issue date doubles as the reference seed, keeping QRR references
// stable across repeated renders of the same invoice.
type Invoice struct {
	id           uuid.UUID
	number       string
	total        decimal.Decimal
	currency     string
	dueDate      time.Time
	customerName string
	issuedAt     time.Time
}

func NewInvoice(number string, total decimal.Decimal, currency string, dueDate time.Time, customerName string) *Invoice {
	return &Invoice{
		id:           uuid.New(),
		number:       number,
		total:        total,
		currency:     currency,
		dueDate:      dueDate,
		customerName: customerName,
		issuedAt:     time.Now(),
	}
}

func ReconstructInvoice(
	id uuid.UUID,
	number string,
	total decimal.Decimal,
	currency string,
	dueDate time.Time,
	customerName string,
	issuedAt time.Time,
) *Invoice {
	return &Invoice{
		id:           id,
		number:       number,
		total:        total,
		currency:     currency,
		dueDate:      dueDate,
		customerName: customerName,
		issuedAt:     issuedAt,
	}
}

func (i *Invoice) ID() uuid.UUID {
	return i.id
}

func (i *Invoice) Number() string {
	return i.number
}

func (i *Invoice) Total() decimal.Decimal {
	return i.total
}

func (i *Invoice) Currency() string {
	return i.currency
}

func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

func (i *Invoice) CustomerName() string {
	return i.customerName
}

func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}
