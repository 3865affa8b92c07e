package usecases

import (
	"context"
	"fmt"

	"kostera/internal/application/subscription/dto"
	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/biztime"
	"kostera/internal/shared/logger"
)

// TxRunner runs a function inside a database transaction, propagating the
// transaction through the context. Satisfied by db.TransactionManager.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AssignPlanCommand struct {
	TenantID uint
	PlanName string
}

// AssignPlanUseCase switches a tenant onto a plan. The previous ACTIVE rows
// are closed and the replacement row is inserted in the same transaction, so
// the tenant never holds two ACTIVE subscriptions and is never left without
// one if the insert fails.
type AssignPlanUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	txManager        TxRunner
	logger           logger.Interface
}

func NewAssignPlanUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	txManager TxRunner,
	logger logger.Interface,
) *AssignPlanUseCase {
	return &AssignPlanUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *AssignPlanUseCase) Execute(ctx context.Context, cmd AssignPlanCommand) (*dto.SubscriptionDTO, error) {
	plan, err := uc.planRepo.GetByName(ctx, cmd.PlanName)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	sub, err := subscription.NewSubscription(cmd.TenantID, plan.ID(), vo.StatusActive, now, now.AddDate(1, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to build subscription: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.subscriptionRepo.DeactivateActiveByTenant(txCtx, cmd.TenantID); err != nil {
			return fmt.Errorf("failed to close previous subscriptions: %w", err)
		}
		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to assign plan", "error", err, "tenant_id", cmd.TenantID, "plan", cmd.PlanName)
		return nil, err
	}

	uc.logger.Infow("plan assigned", "tenant_id", cmd.TenantID, "plan_id", plan.ID(), "plan", plan.Name())
	result := dto.SubscriptionToDTO(sub)
	return &result, nil
}
