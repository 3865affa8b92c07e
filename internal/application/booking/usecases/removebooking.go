package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/booking"
	"kostera/internal/domain/kost"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

// RemoveBookingUseCase cancels a booking and frees its room in one
// transaction. Invoices already issued for the booking are kept.
type RemoveBookingUseCase struct {
	bookingRepo booking.BookingRepository
	roomRepo    kost.RoomRepository
	txManager   TxRunner
	logger      logger.Interface
}

func NewRemoveBookingUseCase(
	bookingRepo booking.BookingRepository,
	roomRepo kost.RoomRepository,
	txManager TxRunner,
	logger logger.Interface,
) *RemoveBookingUseCase {
	return &RemoveBookingUseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *RemoveBookingUseCase) Execute(ctx context.Context, tenantID, bookingID uint) error {
	b, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !b.BelongsTo(tenantID) {
		return booking.ErrBookingNotFound
	}
	if err := b.Cancel(); err != nil {
		return errors.NewConflictError("booking cannot be cancelled", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.Update(txCtx, b); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		room, err := uc.roomRepo.GetByID(txCtx, b.RoomID())
		if err != nil {
			return err
		}
		room.Release()
		if err := uc.roomRepo.Update(txCtx, room); err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to remove booking", "error", err, "booking_id", bookingID)
		return err
	}

	uc.logger.Infow("booking cancelled", "booking_id", bookingID, "room_id", b.RoomID())
	return nil
}

type ListBookingsUseCase struct {
	bookingRepo booking.BookingRepository
	logger      logger.Interface
}

func NewListBookingsUseCase(bookingRepo booking.BookingRepository, logger logger.Interface) *ListBookingsUseCase {
	return &ListBookingsUseCase{bookingRepo: bookingRepo, logger: logger}
}

func (uc *ListBookingsUseCase) Execute(ctx context.Context, tenantID uint) ([]BookingDTO, error) {
	bookings, err := uc.bookingRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list bookings", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	result := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, toBookingDTO(b))
	}
	return result, nil
}
