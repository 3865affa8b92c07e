package usecases

import (
	"context"
	"fmt"

	"kostera/internal/application/subscription/dto"
	"kostera/internal/domain/subscription"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID           uint
	Name             *string
	Price            *uint64
	MaxRooms         *int
	MaxStaff         *int
	MaxAPICalls      *int
	AllowMultiBranch *bool
	AllowFinance     *bool
	AllowExport      *bool
}

// UpdatePlanUseCase applies partial updates to a plan. Changes take effect
// for every subscribed tenant on their next check.
type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil && *cmd.Name != plan.Name() {
		exists, err := uc.planRepo.ExistsByName(ctx, *cmd.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check plan name: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("plan name already exists", *cmd.Name)
		}
		if err := plan.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError("invalid plan name", err.Error())
		}
	}
	if cmd.Price != nil {
		plan.UpdatePrice(*cmd.Price)
	}

	maxRooms := plan.MaxRooms()
	maxStaff := plan.MaxStaff()
	maxAPICalls := plan.MaxAPICalls()
	if cmd.MaxRooms != nil {
		maxRooms = *cmd.MaxRooms
	}
	if cmd.MaxStaff != nil {
		maxStaff = *cmd.MaxStaff
	}
	if cmd.MaxAPICalls != nil {
		maxAPICalls = *cmd.MaxAPICalls
	}
	if err := plan.UpdateLimits(maxRooms, maxStaff, maxAPICalls); err != nil {
		return nil, errors.NewValidationError("invalid plan limits", err.Error())
	}

	allowMultiBranch := plan.AllowMultiBranch()
	allowFinance := plan.AllowFinance()
	allowExport := plan.AllowExport()
	if cmd.AllowMultiBranch != nil {
		allowMultiBranch = *cmd.AllowMultiBranch
	}
	if cmd.AllowFinance != nil {
		allowFinance = *cmd.AllowFinance
	}
	if cmd.AllowExport != nil {
		allowExport = *cmd.AllowExport
	}
	plan.UpdateFlags(allowMultiBranch, allowFinance, allowExport)

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", plan.ID(), "name", plan.Name())
	result := dto.PlanToDTO(plan)
	return &result, nil
}
