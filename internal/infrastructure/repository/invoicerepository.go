package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/booking"
	"kostera/internal/infrastructure/persistence/mappers"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
	logger logger.Interface
}

func NewInvoiceRepository(db *gorm.DB, logger logger.Interface) booking.InvoiceRepository {
	return &InvoiceRepositoryImpl{
		db:     db,
		mapper: mappers.NewBookingMapper(),
		logger: logger,
	}
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, invoice *booking.Invoice) error {
	model := r.mapper.InvoiceToModel(invoice)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create invoice", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := invoice.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set invoice ID: %w", err)
	}

	r.logger.Infow("invoice created", "id", model.ID, "number", model.InvoiceNumber, "amount", model.Amount)
	return nil
}

func (r *InvoiceRepositoryImpl) GetByID(ctx context.Context, id uint) (*booking.Invoice, error) {
	var model models.InvoiceModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrInvoiceNotFound
		}
		r.logger.Errorw("failed to get invoice by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return r.mapper.InvoiceToEntity(&model)
}

func (r *InvoiceRepositoryImpl) GetByBookingID(ctx context.Context, bookingID uint) (*booking.Invoice, error) {
	var model models.InvoiceModel

	if err := db.GetTxFromContext(ctx, r.db).Where("booking_id = ?", bookingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrInvoiceNotFound
		}
		r.logger.Errorw("failed to get invoice by booking", "booking_id", bookingID, "error", err)
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return r.mapper.InvoiceToEntity(&model)
}

func (r *InvoiceRepositoryImpl) Update(ctx context.Context, invoice *booking.Invoice) error {
	model := r.mapper.InvoiceToModel(invoice)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update invoice", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

func (r *InvoiceRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*booking.Invoice, error) {
	var invoiceModels []*models.InvoiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Order("created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		r.logger.Errorw("failed to list invoices", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return r.mapper.InvoicesToEntities(invoiceModels)
}

func (r *InvoiceRepositoryImpl) SumPaidByTenant(ctx context.Context, tenantID uint) (uint64, error) {
	var total *uint64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Select("SUM(amount)").
		Where("tenant_id = ? AND status = ?", tenantID, booking.InvoiceStatusPaid.String()).
		Scan(&total).Error; err != nil {
		r.logger.Errorw("failed to sum paid invoices", "tenant_id", tenantID, "error", err)
		return 0, fmt.Errorf("failed to sum paid invoices: %w", err)
	}

	if total == nil {
		return 0, nil
	}
	return *total, nil
}

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
	logger logger.Interface
}

func NewPaymentRepository(db *gorm.DB, logger logger.Interface) booking.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mappers.NewBookingMapper(),
		logger: logger,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *booking.Payment) error {
	model := r.mapper.PaymentToModel(payment)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment", "invoice_id", model.InvoiceID, "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err := payment.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set payment ID: %w", err)
	}

	return nil
}

func (r *PaymentRepositoryImpl) ListByInvoice(ctx context.Context, invoiceID uint) ([]*booking.Payment, error) {
	var paymentModels []*models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC").
		Find(&paymentModels).Error; err != nil {
		r.logger.Errorw("failed to list payments", "invoice_id", invoiceID, "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*booking.Payment, 0, len(paymentModels))
	for _, pm := range paymentModels {
		payment, err := r.mapper.PaymentToEntity(pm)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
