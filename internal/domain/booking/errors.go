package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvoiceNotFound = errors.New("Invoice not found")
	ErrInvoicePaid     = errors.New("invoice already paid")
)
