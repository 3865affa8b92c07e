package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
)

func TestAssignPlan_DeactivatesThenCreates(t *testing.T) {
	var calls []string
	subRepo := &mockSubscriptionRepository{
		DeactivateActiveByTenantFunc: func(ctx context.Context, tenantID uint) error {
			calls = append(calls, "deactivate")
			return nil
		},
		CreateFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			calls = append(calls, "create")
			assert.Equal(t, vo.StatusActive, sub.Status())
			assert.Equal(t, uint(1), sub.TenantID())
			assert.Equal(t, uint(7), sub.PlanID())
			assert.WithinDuration(t, sub.StartDate().AddDate(1, 0, 0), sub.EndDate(), time.Second)
			return nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*subscription.Plan, error) {
			assert.Equal(t, "Pro", name)
			return testPlan(t, 50, 5, true), nil
		},
	}

	uc := NewAssignPlanUseCase(subRepo, planRepo, &mockTxRunner{}, nopLogger{})
	result, err := uc.Execute(context.Background(), AssignPlanCommand{TenantID: 1, PlanName: "Pro"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{"deactivate", "create"}, calls)
	assert.Equal(t, "ACTIVE", result.Status)
}

func TestAssignPlan_PlanNotFound(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		DeactivateActiveByTenantFunc: func(ctx context.Context, tenantID uint) error {
			t.Fatal("must not touch subscriptions when the plan is missing")
			return nil
		},
	}
	planRepo := &mockPlanRepository{}

	uc := NewAssignPlanUseCase(subRepo, planRepo, &mockTxRunner{}, nopLogger{})
	_, err := uc.Execute(context.Background(), AssignPlanCommand{TenantID: 1, PlanName: "Nonexistent"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, subscription.ErrPlanNotFound))
}

func TestAssignPlan_CreateFailureRollsBack(t *testing.T) {
	deactivated := false
	subRepo := &mockSubscriptionRepository{
		DeactivateActiveByTenantFunc: func(ctx context.Context, tenantID uint) error {
			deactivated = true
			return nil
		},
		CreateFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			return errors.New("insert failed")
		},
	}
	planRepo := &mockPlanRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*subscription.Plan, error) {
			return testPlan(t, 50, 5, true), nil
		},
	}

	rolledBack := false
	tx := &mockTxRunner{
		RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			if err := fn(ctx); err != nil {
				rolledBack = true
				return err
			}
			return nil
		},
	}

	uc := NewAssignPlanUseCase(subRepo, planRepo, tx, nopLogger{})
	_, err := uc.Execute(context.Background(), AssignPlanCommand{TenantID: 1, PlanName: "Pro"})
	require.Error(t, err)
	assert.True(t, deactivated)
	assert.True(t, rolledBack)
}
