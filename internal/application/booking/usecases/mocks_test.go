package usecases

import (
	"context"

	"kostera/internal/domain/booking"
	"kostera/internal/domain/customer"
	"kostera/internal/domain/kost"
	"kostera/internal/shared/logger"
)

type mockBookingRepository struct {
	CreateFunc       func(ctx context.Context, b *booking.Booking) error
	GetByIDFunc      func(ctx context.Context, id uint) (*booking.Booking, error)
	UpdateFunc       func(ctx context.Context, b *booking.Booking) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListByTenantFunc func(ctx context.Context, tenantID uint) ([]*booking.Booking, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return b.SetID(1)
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, booking.ErrBookingNotFound
}

func (m *mockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBookingRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*booking.Booking, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockInvoiceRepository struct {
	CreateFunc          func(ctx context.Context, i *booking.Invoice) error
	GetByIDFunc         func(ctx context.Context, id uint) (*booking.Invoice, error)
	GetByBookingIDFunc  func(ctx context.Context, bookingID uint) (*booking.Invoice, error)
	UpdateFunc          func(ctx context.Context, i *booking.Invoice) error
	ListByTenantFunc    func(ctx context.Context, tenantID uint) ([]*booking.Invoice, error)
	SumPaidByTenantFunc func(ctx context.Context, tenantID uint) (uint64, error)
}

func (m *mockInvoiceRepository) Create(ctx context.Context, i *booking.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return i.SetID(1)
}

func (m *mockInvoiceRepository) GetByID(ctx context.Context, id uint) (*booking.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, booking.ErrInvoiceNotFound
}

func (m *mockInvoiceRepository) GetByBookingID(ctx context.Context, bookingID uint) (*booking.Invoice, error) {
	if m.GetByBookingIDFunc != nil {
		return m.GetByBookingIDFunc(ctx, bookingID)
	}
	return nil, booking.ErrInvoiceNotFound
}

func (m *mockInvoiceRepository) Update(ctx context.Context, i *booking.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockInvoiceRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*booking.Invoice, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) SumPaidByTenant(ctx context.Context, tenantID uint) (uint64, error) {
	if m.SumPaidByTenantFunc != nil {
		return m.SumPaidByTenantFunc(ctx, tenantID)
	}
	return 0, nil
}

type mockPaymentRepository struct {
	CreateFunc        func(ctx context.Context, p *booking.Payment) error
	ListByInvoiceFunc func(ctx context.Context, invoiceID uint) ([]*booking.Payment, error)
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *booking.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockPaymentRepository) ListByInvoice(ctx context.Context, invoiceID uint) ([]*booking.Payment, error) {
	if m.ListByInvoiceFunc != nil {
		return m.ListByInvoiceFunc(ctx, invoiceID)
	}
	return nil, nil
}

type mockRoomRepository struct {
	CreateFunc                func(ctx context.Context, r *kost.Room) error
	GetByIDFunc               func(ctx context.Context, id uint) (*kost.Room, error)
	UpdateFunc                func(ctx context.Context, r *kost.Room) error
	DeleteFunc                func(ctx context.Context, id uint) error
	ListByTenantFunc          func(ctx context.Context, tenantID uint, kostID *uint) ([]*kost.Room, error)
	ListAvailableByTenantFunc func(ctx context.Context, tenantID uint) ([]*kost.Room, error)
	CountByTenantFunc         func(ctx context.Context, tenantID uint) (int64, error)
}

func (m *mockRoomRepository) Create(ctx context.Context, r *kost.Room) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockRoomRepository) GetByID(ctx context.Context, id uint) (*kost.Room, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, kost.ErrRoomNotFound
}

func (m *mockRoomRepository) Update(ctx context.Context, r *kost.Room) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRoomRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRoomRepository) ListByTenant(ctx context.Context, tenantID uint, kostID *uint) ([]*kost.Room, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID, kostID)
	}
	return nil, nil
}

func (m *mockRoomRepository) ListAvailableByTenant(ctx context.Context, tenantID uint) ([]*kost.Room, error) {
	if m.ListAvailableByTenantFunc != nil {
		return m.ListAvailableByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockRoomRepository) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	if m.CountByTenantFunc != nil {
		return m.CountByTenantFunc(ctx, tenantID)
	}
	return 0, nil
}

type mockCustomerRepository struct {
	CreateFunc       func(ctx context.Context, c *customer.Customer) error
	GetByIDFunc      func(ctx context.Context, id uint) (*customer.Customer, error)
	UpdateFunc       func(ctx context.Context, c *customer.Customer) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListByTenantFunc func(ctx context.Context, tenantID uint) ([]*customer.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, customer.ErrCustomerNotFound
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*customer.Customer, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
