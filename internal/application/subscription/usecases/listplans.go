package usecases

import (
	"context"
	"fmt"

	"kostera/internal/application/subscription/dto"
	"kostera/internal/domain/subscription"
	"kostera/internal/shared/logger"
)

type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	result := make([]dto.PlanDTO, 0, len(plans))
	for _, plan := range plans {
		result = append(result, dto.PlanToDTO(plan))
	}
	return result, nil
}
