package usecases

import (
	"context"
	"fmt"

	"kostera/internal/application/subscription/dto"
	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/logger"
)

// GetCurrentPlanUseCase resolves the tenant's active plan together with live
// room and staff counts. Only an ACTIVE subscription entitles; a tenant whose
// trial never converted gets ErrNoActiveSubscription.
type GetCurrentPlanUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	usage            subscription.UsageCounter
	logger           logger.Interface
}

func NewGetCurrentPlanUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	usage subscription.UsageCounter,
	logger logger.Interface,
) *GetCurrentPlanUseCase {
	return &GetCurrentPlanUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		usage:            usage,
		logger:           logger,
	}
}

func (uc *GetCurrentPlanUseCase) Execute(ctx context.Context, tenantID uint) (*dto.CurrentPlanDTO, error) {
	sub, err := uc.subscriptionRepo.GetActiveByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to load plan for active subscription", "error", err, "tenant_id", tenantID, "plan_id", sub.PlanID())
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	rooms, err := uc.usage.CountFor(ctx, tenantID, vo.LimitRooms)
	if err != nil {
		uc.logger.Errorw("failed to count rooms", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	staff, err := uc.usage.CountFor(ctx, tenantID, vo.LimitStaff)
	if err != nil {
		uc.logger.Errorw("failed to count staff", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}

	return &dto.CurrentPlanDTO{
		Plan:         dto.PlanToDTO(plan),
		Subscription: dto.SubscriptionToDTO(sub),
		Usage:        dto.UsageDTO{Rooms: rooms, Staff: staff},
	}, nil
}
