package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/customer"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type CustomerDTO struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	KTPNumber string `json:"ktp_number"`
	Address   string `json:"address"`
}

func toCustomerDTO(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID(),
		FullName:  c.FullName(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		KTPNumber: c.KTPNumber(),
		Address:   c.Address(),
	}
}

type CreateCustomerCommand struct {
	TenantID  uint
	FullName  string
	Phone     string
	Email     string
	KTPNumber string
	Address   string
}

type CreateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CustomerDTO, error) {
	c, err := customer.NewCustomer(cmd.TenantID, cmd.FullName, cmd.Phone, cmd.Email, cmd.KTPNumber, cmd.Address)
	if err != nil {
		return nil, errors.NewValidationError("invalid customer", err.Error())
	}
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create customer", "error", err, "tenant_id", cmd.TenantID)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	result := toCustomerDTO(c)
	return &result, nil
}

type ListCustomersUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, tenantID uint) ([]CustomerDTO, error) {
	customers, err := uc.customerRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	result := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		result = append(result, toCustomerDTO(c))
	}
	return result, nil
}

type UpdateCustomerCommand struct {
	TenantID   uint
	CustomerID uint
	FullName   string
	Phone      string
	Email      string
	KTPNumber  string
	Address    string
}

type UpdateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if !c.BelongsTo(cmd.TenantID) {
		return nil, customer.ErrCustomerNotFound
	}
	if err := c.Update(cmd.FullName, cmd.Phone, cmd.Email, cmd.KTPNumber, cmd.Address); err != nil {
		return nil, errors.NewValidationError("invalid customer", err.Error())
	}
	if err := uc.customerRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "error", err, "customer_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	result := toCustomerDTO(c)
	return &result, nil
}

type DeleteCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, tenantID, customerID uint) error {
	c, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if !c.BelongsTo(tenantID) {
		return customer.ErrCustomerNotFound
	}
	if err := uc.customerRepo.Delete(ctx, customerID); err != nil {
		uc.logger.Errorw("failed to delete customer", "error", err, "customer_id", customerID)
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
