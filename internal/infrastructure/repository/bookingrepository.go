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

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
	logger logger.Interface
}

func NewBookingRepository(db *gorm.DB, logger logger.Interface) booking.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mappers.NewBookingMapper(),
		logger: logger,
	}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, bookingEntity *booking.Booking) error {
	model := r.mapper.ToModel(bookingEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create booking", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := bookingEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set booking ID: %w", err)
	}

	r.logger.Infow("booking created", "id", model.ID, "tenant_id", model.TenantID, "room_id", model.RoomID)
	return nil
}

func (r *BookingRepositoryImpl) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var model models.BookingModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		r.logger.Errorw("failed to get booking by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, bookingEntity *booking.Booking) error {
	model := r.mapper.ToModel(bookingEntity)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update booking", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.BookingModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete booking", "id", id, "error", err)
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (r *BookingRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*booking.Booking, error) {
	var bookingModels []*models.BookingModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Order("start_date DESC").
		Find(&bookingModels).Error; err != nil {
		r.logger.Errorw("failed to list bookings", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return r.mapper.ToEntities(bookingModels)
}
