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

func TestGetCurrentPlan_ReturnsPlanWithUsage(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, tenantID, 7), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return testPlan(t, 50, 5, true), nil
		},
	}
	usage := &mockUsageCounter{
		CountForFunc: func(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
			switch resource {
			case vo.LimitRooms:
				return 12, nil
			case vo.LimitStaff:
				return 3, nil
			}
			return 0, nil
		},
	}

	uc := NewGetCurrentPlanUseCase(subRepo, planRepo, usage, nopLogger{})
	result, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Pro", result.Plan.Name)
	assert.Equal(t, 100, result.Plan.KostLimit)
	assert.Equal(t, int64(12), result.Usage.Rooms)
	assert.Equal(t, int64(3), result.Usage.Staff)
	assert.Equal(t, "ACTIVE", result.Subscription.Status)
}

func TestGetCurrentPlan_TrialDoesNotEntitle(t *testing.T) {
	// The repository only matches ACTIVE rows, so a tenant whose trial
	// never converted gets the sentinel straight through.
	subRepo := &mockSubscriptionRepository{
		GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return nil, subscription.ErrNoActiveSubscription
		},
	}

	uc := NewGetCurrentPlanUseCase(subRepo, &mockPlanRepository{}, &mockUsageCounter{}, nopLogger{})
	_, err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, subscription.ErrNoActiveSubscription))
	assert.Equal(t, "No active subscription found", err.Error())
}

func TestGetCurrentPlan_SingleBranchKostLimit(t *testing.T) {
	now := time.Now()
	plan, err := subscription.ReconstructPlan(3, "Basic", 150000, 10, 1, 1000, false, false, false, now, now)
	require.NoError(t, err)

	subRepo := &mockSubscriptionRepository{
		GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, tenantID, 3), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return plan, nil
		},
	}

	uc := NewGetCurrentPlanUseCase(subRepo, planRepo, &mockUsageCounter{}, nopLogger{})
	result, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Plan.KostLimit)
}
