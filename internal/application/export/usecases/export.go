package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"kostera/internal/domain/booking"
	"kostera/internal/domain/kost"
	"kostera/internal/shared/logger"
)

// ExportResult carries a rendered CSV document ready to stream.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportRoomsCSVUseCase renders the tenant's room inventory as CSV.
// Reachable only behind the allowExport feature gate.
type ExportRoomsCSVUseCase struct {
	roomRepo kost.RoomRepository
	logger   logger.Interface
}

func NewExportRoomsCSVUseCase(roomRepo kost.RoomRepository, logger logger.Interface) *ExportRoomsCSVUseCase {
	return &ExportRoomsCSVUseCase{roomRepo: roomRepo, logger: logger}
}

func (uc *ExportRoomsCSVUseCase) Execute(ctx context.Context, tenantID uint) (*ExportResult, error) {
	rooms, err := uc.roomRepo.ListByTenant(ctx, tenantID, nil)
	if err != nil {
		uc.logger.Errorw("failed to list rooms for export", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"room_number", "kost_id", "price", "status"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, room := range rooms {
		record := []string{
			room.RoomNumber(),
			strconv.FormatUint(uint64(room.KostID()), 10),
			strconv.FormatUint(room.Price(), 10),
			room.Status().String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	uc.logger.Infow("rooms exported", "tenant_id", tenantID, "rows", len(rooms))
	return &ExportResult{
		Filename:    fmt.Sprintf("rooms-%s.csv", time.Now().Format("2006-01-02")),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportInvoicesCSVUseCase renders the tenant's invoices as CSV.
type ExportInvoicesCSVUseCase struct {
	invoiceRepo booking.InvoiceRepository
	logger      logger.Interface
}

func NewExportInvoicesCSVUseCase(invoiceRepo booking.InvoiceRepository, logger logger.Interface) *ExportInvoicesCSVUseCase {
	return &ExportInvoicesCSVUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *ExportInvoicesCSVUseCase) Execute(ctx context.Context, tenantID uint) (*ExportResult, error) {
	invoices, err := uc.invoiceRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list invoices for export", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"invoice_number", "booking_id", "amount", "due_date", "status"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, invoice := range invoices {
		record := []string{
			invoice.InvoiceNumber(),
			strconv.FormatUint(uint64(invoice.BookingID()), 10),
			strconv.FormatUint(invoice.Amount(), 10),
			invoice.DueDate().Format(time.RFC3339),
			invoice.Status().String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	uc.logger.Infow("invoices exported", "tenant_id", tenantID, "rows", len(invoices))
	return &ExportResult{
		Filename:    fmt.Sprintf("invoices-%s.csv", time.Now().Format("2006-01-02")),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}
