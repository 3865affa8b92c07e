package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/logger"
)

// CheckLimitUseCase guards resource creation against the plan ceiling.
// The check is strict: creation is denied when the live count has already
// reached the limit, so count == limit fails.
type CheckLimitUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	usage            subscription.UsageCounter
	logger           logger.Interface
}

func NewCheckLimitUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	usage subscription.UsageCounter,
	logger logger.Interface,
) *CheckLimitUseCase {
	return &CheckLimitUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		usage:            usage,
		logger:           logger,
	}
}

func (uc *CheckLimitUseCase) Execute(ctx context.Context, tenantID uint, resource vo.LimitResource) error {
	sub, err := uc.subscriptionRepo.GetActiveByTenantID(ctx, tenantID)
	if err != nil {
		return err
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to load plan for limit check", "error", err, "tenant_id", tenantID, "plan_id", sub.PlanID())
		return fmt.Errorf("failed to load plan: %w", err)
	}

	limit, err := plan.LimitFor(resource)
	if err != nil {
		return err
	}

	count, err := uc.usage.CountFor(ctx, tenantID, resource)
	if err != nil {
		uc.logger.Errorw("failed to count usage", "error", err, "tenant_id", tenantID, "resource", resource.String())
		return fmt.Errorf("failed to count usage: %w", err)
	}

	if count >= int64(limit) {
		uc.logger.Infow("plan limit reached",
			"tenant_id", tenantID,
			"resource", resource.String(),
			"count", count,
			"limit", limit,
		)
		return &subscription.LimitReachedError{Resource: resource, Limit: limit}
	}
	return nil
}
