package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/subscription"
	"kostera/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint) error {
	if _, err := uc.planRepo.GetByID(ctx, planID); err != nil {
		return err
	}
	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	uc.logger.Infow("plan deleted", "plan_id", planID)
	return nil
}
