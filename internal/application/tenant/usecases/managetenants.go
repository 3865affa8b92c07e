package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/tenant"
	"kostera/internal/shared/logger"
)

type TenantDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

func toTenantDTO(t *tenant.Tenant) TenantDTO {
	return TenantDTO{
		ID:       t.ID(),
		Name:     t.Name(),
		Slug:     t.Slug(),
		Phone:    t.Phone(),
		Address:  t.Address(),
		IsActive: t.IsActive(),
	}
}

// ListTenantsUseCase pages through every tenant. Superadmin only.
type ListTenantsUseCase struct {
	tenantRepo tenant.TenantRepository
	logger     logger.Interface
}

func NewListTenantsUseCase(tenantRepo tenant.TenantRepository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenantRepo: tenantRepo, logger: logger}
}

type ListTenantsResult struct {
	Tenants []TenantDTO `json:"tenants"`
	Total   int64       `json:"total"`
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context, page, pageSize int) (*ListTenantsResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	tenants, total, err := uc.tenantRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tenants", "error", err)
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	result := &ListTenantsResult{Tenants: make([]TenantDTO, 0, len(tenants)), Total: total}
	for _, t := range tenants {
		result.Tenants = append(result.Tenants, toTenantDTO(t))
	}
	return result, nil
}

// SuspendTenantUseCase cuts off a tenant. Every authenticated call for the
// tenant fails afterwards until reactivation; data is kept.
type SuspendTenantUseCase struct {
	tenantRepo tenant.TenantRepository
	logger     logger.Interface
}

func NewSuspendTenantUseCase(tenantRepo tenant.TenantRepository, logger logger.Interface) *SuspendTenantUseCase {
	return &SuspendTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *SuspendTenantUseCase) Execute(ctx context.Context, tenantID uint) error {
	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	t.Suspend()
	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to suspend tenant", "error", err, "tenant_id", tenantID)
		return fmt.Errorf("failed to suspend tenant: %w", err)
	}
	uc.logger.Warnw("tenant suspended", "tenant_id", tenantID, "slug", t.Slug())
	return nil
}

type ReactivateTenantUseCase struct {
	tenantRepo tenant.TenantRepository
	logger     logger.Interface
}

func NewReactivateTenantUseCase(tenantRepo tenant.TenantRepository, logger logger.Interface) *ReactivateTenantUseCase {
	return &ReactivateTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *ReactivateTenantUseCase) Execute(ctx context.Context, tenantID uint) error {
	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	t.Reactivate()
	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to reactivate tenant", "error", err, "tenant_id", tenantID)
		return fmt.Errorf("failed to reactivate tenant: %w", err)
	}
	uc.logger.Infow("tenant reactivated", "tenant_id", tenantID, "slug", t.Slug())
	return nil
}
