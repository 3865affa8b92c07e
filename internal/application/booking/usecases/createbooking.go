package usecases

import (
	"context"
	"fmt"
	"time"

	"kostera/internal/domain/booking"
	"kostera/internal/domain/customer"
	"kostera/internal/domain/kost"
	"kostera/internal/shared/biztime"
	"kostera/internal/shared/logger"
)

type CreateBookingCommand struct {
	TenantID      uint
	RoomID        uint
	CustomerID    uint
	StartDate     time.Time
	DurationMonth int
}

// CreateBookingUseCase places a customer into a room. Booking, room
// occupation and the first invoice are committed atomically; if the invoice
// cannot be written the room stays available.
type CreateBookingUseCase struct {
	bookingRepo  booking.BookingRepository
	invoiceRepo  booking.InvoiceRepository
	roomRepo     kost.RoomRepository
	customerRepo customer.CustomerRepository
	txManager    TxRunner
	logger       logger.Interface
}

func NewCreateBookingUseCase(
	bookingRepo booking.BookingRepository,
	invoiceRepo booking.InvoiceRepository,
	roomRepo kost.RoomRepository,
	customerRepo customer.CustomerRepository,
	txManager TxRunner,
	logger logger.Interface,
) *CreateBookingUseCase {
	return &CreateBookingUseCase{
		bookingRepo:  bookingRepo,
		invoiceRepo:  invoiceRepo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error) {
	room, err := uc.roomRepo.GetByID(ctx, cmd.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.BelongsTo(cmd.TenantID) {
		return nil, kost.ErrRoomNotFound
	}
	if !room.IsAvailable() {
		return nil, kost.ErrRoomNotAvailable
	}

	c, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if !c.BelongsTo(cmd.TenantID) {
		return nil, customer.ErrCustomerNotFound
	}

	startDate := cmd.StartDate
	if startDate.IsZero() {
		startDate = biztime.NowUTC()
	}
	duration := cmd.DurationMonth
	if duration <= 0 {
		duration = 1
	}
	endDate := startDate.AddDate(0, duration, 0)

	newBooking, err := booking.NewBooking(cmd.TenantID, cmd.RoomID, cmd.CustomerID, startDate, endDate, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to build booking: %w", err)
	}

	var invoice *booking.Invoice
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.Create(txCtx, newBooking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if err := room.Occupy(newBooking.ID()); err != nil {
			return err
		}
		if err := uc.roomRepo.Update(txCtx, room); err != nil {
			return fmt.Errorf("failed to occupy room: %w", err)
		}

		invoice, err = booking.NewInvoiceFromBooking(cmd.TenantID, newBooking.ID(), room.Price(), biztime.NowUTC())
		if err != nil {
			return fmt.Errorf("failed to build invoice: %w", err)
		}
		if err := uc.invoiceRepo.Create(txCtx, invoice); err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create booking", "error", err, "tenant_id", cmd.TenantID, "room_id", cmd.RoomID)
		return nil, err
	}

	uc.logger.Infow("booking created",
		"booking_id", newBooking.ID(),
		"room_id", cmd.RoomID,
		"customer_id", cmd.CustomerID,
		"invoice_number", invoice.InvoiceNumber(),
	)
	return &CreateBookingResult{
		Booking: toBookingDTO(newBooking),
		Invoice: toInvoiceDTO(invoice),
	}, nil
}
