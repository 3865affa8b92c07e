package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceFromBooking(t *testing.T) {
	issuedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	inv, err := NewInvoiceFromBooking(1, 7, 1500000, issuedAt)

	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, InvoiceStatusUnpaid, inv.Status())
	assert.Equal(t, uint64(1500000), inv.Amount())
	assert.Equal(t, issuedAt.AddDate(0, 0, 3), inv.DueDate())
	assert.Equal(t, fmt.Sprintf("INV/2026/%d", issuedAt.UnixMilli()), inv.InvoiceNumber())
}

func TestNewInvoiceFromBooking_Invalid(t *testing.T) {
	issuedAt := time.Now().UTC()

	_, err := NewInvoiceFromBooking(0, 7, 100, issuedAt)
	assert.Error(t, err)

	_, err = NewInvoiceFromBooking(1, 0, 100, issuedAt)
	assert.Error(t, err)
}

func TestInvoice_MarkPaid(t *testing.T) {
	inv, err := NewInvoiceFromBooking(1, 7, 1500000, time.Now().UTC())
	require.NoError(t, err)

	err = inv.MarkPaid()
	require.NoError(t, err)
	assert.True(t, inv.IsPaid())

	err = inv.MarkPaid()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already paid")
}

func TestNewBooking_DefaultsDuration(t *testing.T) {
	start := time.Now().UTC()

	b, err := NewBooking(1, 2, 3, start, start.AddDate(0, 1, 0), 0)

	require.NoError(t, err)
	assert.Equal(t, 1, b.DurationMonth())
	assert.Equal(t, BookingStatusActive, b.Status())
}

func TestBooking_CancelAndComplete(t *testing.T) {
	start := time.Now().UTC()

	b, err := NewBooking(1, 2, 3, start, start.AddDate(0, 1, 0), 1)
	require.NoError(t, err)

	require.NoError(t, b.Complete())
	assert.Equal(t, BookingStatusCompleted, b.Status())

	err = b.Cancel()
	assert.Error(t, err)
}

func TestNewPayment_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		tenantID  uint
		invoiceID uint
		amount    uint64
		method    string
	}{
		{"zero tenant", 0, 1, 100, "CASH"},
		{"zero invoice", 1, 0, 100, "CASH"},
		{"zero amount", 1, 1, 0, "CASH"},
		{"empty method", 1, 1, 100, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPayment(tc.tenantID, tc.invoiceID, tc.amount, tc.method)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}
