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

func activeSubscription(t *testing.T, tenantID, planID uint) *subscription.Subscription {
	t.Helper()
	now := time.Now()
	sub, err := subscription.ReconstructSubscription(1, tenantID, planID, vo.StatusActive, now, now.AddDate(1, 0, 0), now, now)
	require.NoError(t, err)
	return sub
}

func testPlan(t *testing.T, maxRooms, maxStaff int, multiBranch bool) *subscription.Plan {
	t.Helper()
	now := time.Now()
	plan, err := subscription.ReconstructPlan(7, "Pro", 450000, maxRooms, maxStaff, 10000, multiBranch, true, true, now, now)
	require.NoError(t, err)
	return plan
}

func TestCheckLimit_UnderLimit(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, tenantID, 7), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return testPlan(t, 10, 1, false), nil
		},
	}
	usage := &mockUsageCounter{
		CountForFunc: func(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
			return 9, nil
		},
	}

	uc := NewCheckLimitUseCase(subRepo, planRepo, usage, nopLogger{})
	err := uc.Execute(context.Background(), 1, vo.LimitRooms)
	assert.NoError(t, err)
}

func TestCheckLimit_AtLimitDenied(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, tenantID, 7), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return testPlan(t, 10, 1, false), nil
		},
	}
	usage := &mockUsageCounter{
		CountForFunc: func(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
			return 10, nil
		},
	}

	uc := NewCheckLimitUseCase(subRepo, planRepo, usage, nopLogger{})
	err := uc.Execute(context.Background(), 1, vo.LimitRooms)
	require.Error(t, err)
	assert.True(t, errors.Is(err, subscription.ErrLimitReached))
	assert.Equal(t, "Plan limit reached for maxRooms (10)", err.Error())
}

func TestCheckLimit_ZeroLimitAlwaysDenies(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, tenantID, 7), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return testPlan(t, 0, 0, false), nil
		},
	}
	usage := &mockUsageCounter{
		CountForFunc: func(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
			return 0, nil
		},
	}

	uc := NewCheckLimitUseCase(subRepo, planRepo, usage, nopLogger{})
	err := uc.Execute(context.Background(), 1, vo.LimitStaff)
	require.Error(t, err)
	assert.True(t, errors.Is(err, subscription.ErrLimitReached))
}

func TestCheckLimit_KostLimitFollowsMultiBranch(t *testing.T) {
	tests := []struct {
		name        string
		multiBranch bool
		count       int64
		wantErr     bool
		wantMsg     string
	}{
		{name: "single branch at one kost", multiBranch: false, count: 1, wantErr: true, wantMsg: "Plan limit reached for maxKosts (1)"},
		{name: "single branch no kosts", multiBranch: false, count: 0, wantErr: false},
		{name: "multi branch under ceiling", multiBranch: true, count: 42, wantErr: false},
		{name: "multi branch at ceiling", multiBranch: true, count: 100, wantErr: true, wantMsg: "Plan limit reached for maxKosts (100)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subRepo := &mockSubscriptionRepository{
				GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
					return activeSubscription(t, tenantID, 7), nil
				},
			}
			planRepo := &mockPlanRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
					return testPlan(t, 50, 5, tt.multiBranch), nil
				},
			}
			usage := &mockUsageCounter{
				CountForFunc: func(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
					return tt.count, nil
				},
			}

			uc := NewCheckLimitUseCase(subRepo, planRepo, usage, nopLogger{})
			err := uc.Execute(context.Background(), 1, vo.LimitKosts)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckLimit_NoActiveSubscription(t *testing.T) {
	subRepo := &mockSubscriptionRepository{}
	planRepo := &mockPlanRepository{}
	usage := &mockUsageCounter{}

	uc := NewCheckLimitUseCase(subRepo, planRepo, usage, nopLogger{})
	err := uc.Execute(context.Background(), 1, vo.LimitRooms)
	require.Error(t, err)
	assert.True(t, errors.Is(err, subscription.ErrNoActiveSubscription))
	assert.Equal(t, "No active subscription found", err.Error())
}

func TestCheckLimit_CountErrorIsNotDenial(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetActiveByTenantIDFunc: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, tenantID, 7), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return testPlan(t, 10, 1, false), nil
		},
	}
	usage := &mockUsageCounter{
		CountForFunc: func(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
			return 0, errors.New("db connection reset")
		},
	}

	uc := NewCheckLimitUseCase(subRepo, planRepo, usage, nopLogger{})
	err := uc.Execute(context.Background(), 1, vo.LimitRooms)
	require.Error(t, err)
	assert.False(t, errors.Is(err, subscription.ErrLimitReached))
}
