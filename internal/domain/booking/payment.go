package booking

import (
	"fmt"
	"time"
)

// Payment records money received against an invoice.
type Payment struct {
	id            uint
	tenantID      uint
	invoiceID     uint
	amount        uint64
	paymentMethod string
	createdAt     time.Time
}

func NewPayment(tenantID, invoiceID uint, amount uint64, paymentMethod string) (*Payment, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if invoiceID == 0 {
		return nil, fmt.Errorf("invoice ID is required")
	}
	if amount == 0 {
		return nil, fmt.Errorf("payment amount must be greater than 0")
	}
	if paymentMethod == "" {
		return nil, fmt.Errorf("payment method is required")
	}

	return &Payment{
		tenantID:      tenantID,
		invoiceID:     invoiceID,
		amount:        amount,
		paymentMethod: paymentMethod,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructPayment(id, tenantID, invoiceID uint, amount uint64,
	paymentMethod string, createdAt time.Time) (*Payment, error) {

	if id == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}

	return &Payment{
		id:            id,
		tenantID:      tenantID,
		invoiceID:     invoiceID,
		amount:        amount,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
	}, nil
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Payment) TenantID() uint {
	return p.tenantID
}

func (p *Payment) InvoiceID() uint {
	return p.invoiceID
}

func (p *Payment) Amount() uint64 {
	return p.amount
}

func (p *Payment) PaymentMethod() string {
	return p.paymentMethod
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
