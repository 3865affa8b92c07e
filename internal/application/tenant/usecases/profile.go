package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/tenant"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type GetTenantProfileUseCase struct {
	tenantRepo tenant.TenantRepository
	logger     logger.Interface
}

func NewGetTenantProfileUseCase(tenantRepo tenant.TenantRepository, logger logger.Interface) *GetTenantProfileUseCase {
	return &GetTenantProfileUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *GetTenantProfileUseCase) Execute(ctx context.Context, tenantID uint) (*TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	result := toTenantDTO(t)
	return &result, nil
}

type UpdateTenantProfileCommand struct {
	TenantID uint
	Name     string
	Phone    string
	Address  string
}

// UpdateTenantProfileUseCase updates display fields. The slug is fixed at
// registration; storefront URLs never move.
type UpdateTenantProfileUseCase struct {
	tenantRepo tenant.TenantRepository
	logger     logger.Interface
}

func NewUpdateTenantProfileUseCase(tenantRepo tenant.TenantRepository, logger logger.Interface) *UpdateTenantProfileUseCase {
	return &UpdateTenantProfileUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *UpdateTenantProfileUseCase) Execute(ctx context.Context, cmd UpdateTenantProfileCommand) (*TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, err
	}
	if err := t.UpdateProfile(cmd.Name, cmd.Phone, cmd.Address); err != nil {
		return nil, errors.NewValidationError("invalid tenant profile", err.Error())
	}
	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update tenant profile", "error", err, "tenant_id", cmd.TenantID)
		return nil, fmt.Errorf("failed to update tenant profile: %w", err)
	}
	result := toTenantDTO(t)
	return &result, nil
}
