package mappers

import (
	"kostera/internal/domain/booking"
	"kostera/internal/infrastructure/persistence/models"
)

type BookingMapper interface {
	ToEntity(model *models.BookingModel) (*booking.Booking, error)
	ToModel(entity *booking.Booking) *models.BookingModel
	ToEntities(models []*models.BookingModel) ([]*booking.Booking, error)

	InvoiceToEntity(model *models.InvoiceModel) (*booking.Invoice, error)
	InvoiceToModel(entity *booking.Invoice) *models.InvoiceModel
	InvoicesToEntities(models []*models.InvoiceModel) ([]*booking.Invoice, error)

	PaymentToEntity(model *models.PaymentModel) (*booking.Payment, error)
	PaymentToModel(entity *booking.Payment) *models.PaymentModel
}

type BookingMapperImpl struct{}

func NewBookingMapper() BookingMapper {
	return &BookingMapperImpl{}
}

func (m *BookingMapperImpl) ToEntity(model *models.BookingModel) (*booking.Booking, error) {
	if model == nil {
		return nil, nil
	}

	return booking.ReconstructBooking(
		model.ID,
		model.TenantID,
		model.RoomID,
		model.CustomerID,
		model.StartDate,
		model.EndDate,
		model.DurationMonth,
		booking.BookingStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *BookingMapperImpl) ToModel(entity *booking.Booking) *models.BookingModel {
	if entity == nil {
		return nil
	}

	return &models.BookingModel{
		ID:            entity.ID(),
		TenantID:      entity.TenantID(),
		RoomID:        entity.RoomID(),
		CustomerID:    entity.CustomerID(),
		StartDate:     entity.StartDate(),
		EndDate:       entity.EndDate(),
		DurationMonth: entity.DurationMonth(),
		Status:        entity.Status().String(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *BookingMapperImpl) ToEntities(bookingModels []*models.BookingModel) ([]*booking.Booking, error) {
	entities := make([]*booking.Booking, 0, len(bookingModels))
	for _, bm := range bookingModels {
		entity, err := m.ToEntity(bm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *BookingMapperImpl) InvoiceToEntity(model *models.InvoiceModel) (*booking.Invoice, error) {
	if model == nil {
		return nil, nil
	}

	return booking.ReconstructInvoice(
		model.ID,
		model.TenantID,
		model.BookingID,
		model.InvoiceNumber,
		model.Amount,
		model.DueDate,
		booking.InvoiceStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *BookingMapperImpl) InvoiceToModel(entity *booking.Invoice) *models.InvoiceModel {
	if entity == nil {
		return nil
	}

	return &models.InvoiceModel{
		ID:            entity.ID(),
		TenantID:      entity.TenantID(),
		BookingID:     entity.BookingID(),
		InvoiceNumber: entity.InvoiceNumber(),
		Amount:        entity.Amount(),
		DueDate:       entity.DueDate(),
		Status:        entity.Status().String(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *BookingMapperImpl) InvoicesToEntities(invoiceModels []*models.InvoiceModel) ([]*booking.Invoice, error) {
	entities := make([]*booking.Invoice, 0, len(invoiceModels))
	for _, im := range invoiceModels {
		entity, err := m.InvoiceToEntity(im)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *BookingMapperImpl) PaymentToEntity(model *models.PaymentModel) (*booking.Payment, error) {
	if model == nil {
		return nil, nil
	}

	return booking.ReconstructPayment(
		model.ID,
		model.TenantID,
		model.InvoiceID,
		model.Amount,
		model.PaymentMethod,
		model.CreatedAt,
	)
}

func (m *BookingMapperImpl) PaymentToModel(entity *booking.Payment) *models.PaymentModel {
	if entity == nil {
		return nil
	}

	return &models.PaymentModel{
		ID:            entity.ID(),
		TenantID:      entity.TenantID(),
		InvoiceID:     entity.InvoiceID(),
		Amount:        entity.Amount(),
		PaymentMethod: entity.PaymentMethod(),
		CreatedAt:     entity.CreatedAt(),
	}
}
