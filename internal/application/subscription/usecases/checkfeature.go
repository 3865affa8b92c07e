package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/logger"
)

// CheckFeatureUseCase gates feature-flagged modules on the active plan.
type CheckFeatureUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewCheckFeatureUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *CheckFeatureUseCase {
	return &CheckFeatureUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *CheckFeatureUseCase) Execute(ctx context.Context, tenantID uint, feature vo.Feature) error {
	sub, err := uc.subscriptionRepo.GetActiveByTenantID(ctx, tenantID)
	if err != nil {
		return err
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to load plan for feature check", "error", err, "tenant_id", tenantID, "plan_id", sub.PlanID())
		return fmt.Errorf("failed to load plan: %w", err)
	}

	if !plan.HasFeature(feature) {
		uc.logger.Infow("feature not in plan", "tenant_id", tenantID, "feature", feature.String(), "plan", plan.Name())
		return &subscription.FeatureNotSupportedError{Feature: feature}
	}
	return nil
}
