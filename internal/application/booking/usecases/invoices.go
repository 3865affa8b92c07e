package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/booking"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type ListInvoicesUseCase struct {
	invoiceRepo booking.InvoiceRepository
	logger      logger.Interface
}

func NewListInvoicesUseCase(invoiceRepo booking.InvoiceRepository, logger logger.Interface) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, tenantID uint) ([]InvoiceDTO, error) {
	invoices, err := uc.invoiceRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list invoices", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	result := make([]InvoiceDTO, 0, len(invoices))
	for _, i := range invoices {
		result = append(result, toInvoiceDTO(i))
	}
	return result, nil
}

type PayInvoiceCommand struct {
	TenantID      uint
	InvoiceID     uint
	PaymentMethod string
}

// PayInvoiceUseCase records a settlement. The payment row and the PAID flip
// commit together; paying twice is rejected.
type PayInvoiceUseCase struct {
	invoiceRepo booking.InvoiceRepository
	paymentRepo booking.PaymentRepository
	txManager   TxRunner
	logger      logger.Interface
}

func NewPayInvoiceUseCase(
	invoiceRepo booking.InvoiceRepository,
	paymentRepo booking.PaymentRepository,
	txManager TxRunner,
	logger logger.Interface,
) *PayInvoiceUseCase {
	return &PayInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *PayInvoiceUseCase) Execute(ctx context.Context, cmd PayInvoiceCommand) (*InvoiceDTO, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.BelongsTo(cmd.TenantID) {
		return nil, booking.ErrInvoiceNotFound
	}
	if err := invoice.MarkPaid(); err != nil {
		return nil, errors.NewConflictError("invoice already settled", err.Error())
	}

	method := cmd.PaymentMethod
	if method == "" {
		method = "CASH"
	}
	payment, err := booking.NewPayment(cmd.TenantID, invoice.ID(), invoice.Amount(), method)
	if err != nil {
		return nil, errors.NewValidationError("invalid payment", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.paymentRepo.Create(txCtx, payment); err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		if err := uc.invoiceRepo.Update(txCtx, invoice); err != nil {
			return fmt.Errorf("failed to settle invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to pay invoice", "error", err, "invoice_id", cmd.InvoiceID)
		return nil, err
	}

	uc.logger.Infow("invoice paid", "invoice_id", invoice.ID(), "invoice_number", invoice.InvoiceNumber(), "amount", invoice.Amount())
	result := toInvoiceDTO(invoice)
	return &result, nil
}
