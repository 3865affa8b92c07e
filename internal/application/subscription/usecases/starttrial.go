package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/biztime"
	"kostera/internal/shared/logger"
)

// StartTrialUseCase creates the TRIAL subscription a fresh tenant gets at
// registration. A trial does not entitle anything; the tenant must be
// assigned an ACTIVE plan before limit or feature checks pass.
type StartTrialUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	defaultPlanName  string
	trialDays        int
	logger           logger.Interface
}

func NewStartTrialUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	defaultPlanName string,
	trialDays int,
	logger logger.Interface,
) *StartTrialUseCase {
	return &StartTrialUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		defaultPlanName:  defaultPlanName,
		trialDays:        trialDays,
		logger:           logger,
	}
}

func (uc *StartTrialUseCase) Execute(ctx context.Context, tenantID uint) error {
	plan, err := uc.planRepo.GetByName(ctx, uc.defaultPlanName)
	if err != nil {
		uc.logger.Errorw("default plan missing", "error", err, "plan", uc.defaultPlanName)
		return fmt.Errorf("failed to load default plan: %w", err)
	}

	now := biztime.NowUTC()
	sub, err := subscription.NewSubscription(tenantID, plan.ID(), vo.StatusTrial, now, now.AddDate(0, 0, uc.trialDays))
	if err != nil {
		return fmt.Errorf("failed to build trial subscription: %w", err)
	}
	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		return fmt.Errorf("failed to create trial subscription: %w", err)
	}

	uc.logger.Infow("trial started", "tenant_id", tenantID, "plan", plan.Name(), "days", uc.trialDays)
	return nil
}
