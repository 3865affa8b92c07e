package usecases

import (
	"context"
	"fmt"

	"kostera/internal/application/subscription/dto"
	"kostera/internal/domain/subscription"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name             string
	Price            uint64
	MaxRooms         int
	MaxStaff         int
	MaxAPICalls      int
	AllowMultiBranch bool
	AllowFinance     bool
	AllowExport      bool
}

type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	exists, err := uc.planRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan name: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("plan name already exists", cmd.Name)
	}

	plan, err := subscription.NewPlan(cmd.Name, cmd.Price, cmd.MaxRooms, cmd.MaxStaff, cmd.MaxAPICalls,
		cmd.AllowMultiBranch, cmd.AllowFinance, cmd.AllowExport)
	if err != nil {
		return nil, errors.NewValidationError("invalid plan", err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_id", plan.ID(), "name", plan.Name())
	result := dto.PlanToDTO(plan)
	return &result, nil
}
