package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/kost"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type CreateKostCommand struct {
	TenantID    uint
	Name        string
	Address     string
	Description string
}

// CreateKostUseCase creates a branch. The limit check runs first, so a
// single-branch plan denies the second kost before anything is written.
type CreateKostUseCase struct {
	kostRepo     kost.KostRepository
	limitChecker LimitChecker
	logger       logger.Interface
}

func NewCreateKostUseCase(kostRepo kost.KostRepository, limitChecker LimitChecker, logger logger.Interface) *CreateKostUseCase {
	return &CreateKostUseCase{kostRepo: kostRepo, limitChecker: limitChecker, logger: logger}
}

func (uc *CreateKostUseCase) Execute(ctx context.Context, cmd CreateKostCommand) (*KostDTO, error) {
	if err := uc.limitChecker.Execute(ctx, cmd.TenantID, vo.LimitKosts); err != nil {
		return nil, err
	}

	k, err := kost.NewKost(cmd.TenantID, cmd.Name, cmd.Address, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError("invalid kost", err.Error())
	}
	if err := uc.kostRepo.Create(ctx, k); err != nil {
		uc.logger.Errorw("failed to create kost", "error", err, "tenant_id", cmd.TenantID)
		return nil, fmt.Errorf("failed to create kost: %w", err)
	}

	uc.logger.Infow("kost created", "kost_id", k.ID(), "tenant_id", cmd.TenantID)
	result := toKostDTO(k)
	return &result, nil
}

type ListKostsUseCase struct {
	kostRepo kost.KostRepository
	logger   logger.Interface
}

func NewListKostsUseCase(kostRepo kost.KostRepository, logger logger.Interface) *ListKostsUseCase {
	return &ListKostsUseCase{kostRepo: kostRepo, logger: logger}
}

func (uc *ListKostsUseCase) Execute(ctx context.Context, tenantID uint) ([]KostDTO, error) {
	kosts, err := uc.kostRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list kosts", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list kosts: %w", err)
	}
	result := make([]KostDTO, 0, len(kosts))
	for _, k := range kosts {
		result = append(result, toKostDTO(k))
	}
	return result, nil
}

type GetKostUseCase struct {
	kostRepo kost.KostRepository
	logger   logger.Interface
}

func NewGetKostUseCase(kostRepo kost.KostRepository, logger logger.Interface) *GetKostUseCase {
	return &GetKostUseCase{kostRepo: kostRepo, logger: logger}
}

func (uc *GetKostUseCase) Execute(ctx context.Context, tenantID, kostID uint) (*KostDTO, error) {
	k, err := uc.kostRepo.GetByID(ctx, kostID)
	if err != nil {
		return nil, err
	}
	if !k.BelongsTo(tenantID) {
		return nil, kost.ErrKostAccessDenied
	}
	result := toKostDTO(k)
	return &result, nil
}

type UpdateKostCommand struct {
	TenantID    uint
	KostID      uint
	Name        string
	Address     string
	Description string
}

type UpdateKostUseCase struct {
	kostRepo kost.KostRepository
	logger   logger.Interface
}

func NewUpdateKostUseCase(kostRepo kost.KostRepository, logger logger.Interface) *UpdateKostUseCase {
	return &UpdateKostUseCase{kostRepo: kostRepo, logger: logger}
}

func (uc *UpdateKostUseCase) Execute(ctx context.Context, cmd UpdateKostCommand) (*KostDTO, error) {
	k, err := uc.kostRepo.GetByID(ctx, cmd.KostID)
	if err != nil {
		return nil, err
	}
	if !k.BelongsTo(cmd.TenantID) {
		return nil, kost.ErrKostAccessDenied
	}
	if err := k.Update(cmd.Name, cmd.Address, cmd.Description); err != nil {
		return nil, errors.NewValidationError("invalid kost", err.Error())
	}
	if err := uc.kostRepo.Update(ctx, k); err != nil {
		uc.logger.Errorw("failed to update kost", "error", err, "kost_id", cmd.KostID)
		return nil, fmt.Errorf("failed to update kost: %w", err)
	}
	result := toKostDTO(k)
	return &result, nil
}

type DeleteKostUseCase struct {
	kostRepo kost.KostRepository
	logger   logger.Interface
}

func NewDeleteKostUseCase(kostRepo kost.KostRepository, logger logger.Interface) *DeleteKostUseCase {
	return &DeleteKostUseCase{kostRepo: kostRepo, logger: logger}
}

func (uc *DeleteKostUseCase) Execute(ctx context.Context, tenantID, kostID uint) error {
	k, err := uc.kostRepo.GetByID(ctx, kostID)
	if err != nil {
		return err
	}
	if !k.BelongsTo(tenantID) {
		return kost.ErrKostAccessDenied
	}
	if err := uc.kostRepo.Delete(ctx, kostID); err != nil {
		uc.logger.Errorw("failed to delete kost", "error", err, "kost_id", kostID)
		return fmt.Errorf("failed to delete kost: %w", err)
	}
	uc.logger.Infow("kost deleted", "kost_id", kostID, "tenant_id", tenantID)
	return nil
}
