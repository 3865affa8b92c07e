package subscription

import (
	"testing"
	"time"

	vo "kostera/internal/domain/subscription/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveSubscription(t *testing.T) *Subscription {
	t.Helper()
	start := time.Now().UTC()
	sub, err := NewSubscription(1, 2, vo.StatusActive, start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

func TestNewSubscription_ValidInput(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(1, 0, 0)

	sub, err := NewSubscription(3, 5, vo.StatusTrial, start, end)

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, uint(3), sub.TenantID())
	assert.Equal(t, uint(5), sub.PlanID())
	assert.Equal(t, vo.StatusTrial, sub.Status())
	assert.Equal(t, start, sub.StartDate())
	assert.Equal(t, end, sub.EndDate())
	assert.False(t, sub.IsActive())
}

func TestNewSubscription_Invalid(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(1, 0, 0)

	tests := []struct {
		name     string
		tenantID uint
		planID   uint
		status   vo.SubscriptionStatus
		start    time.Time
		end      time.Time
		wantErr  string
	}{
		{"zero tenant", 0, 1, vo.StatusActive, start, end, "tenant ID is required"},
		{"zero plan", 1, 0, vo.StatusActive, start, end, "plan ID is required"},
		{"bad status", 1, 1, vo.SubscriptionStatus("PAUSED"), start, end, "invalid subscription status"},
		{"end before start", 1, 1, vo.StatusActive, end, start, "end date must be after start date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := NewSubscription(tc.tenantID, tc.planID, tc.status, tc.start, tc.end)
			assert.Error(t, err)
			assert.Nil(t, sub)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSubscription_IsActive_OnlyActiveStatus(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(1, 0, 0)

	tests := []struct {
		status vo.SubscriptionStatus
		want   bool
	}{
		{vo.StatusTrial, false},
		{vo.StatusActive, true},
		{vo.StatusInactive, false},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			sub, err := NewSubscription(1, 1, tc.status, start, end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sub.IsActive())
		})
	}
}

func TestSubscription_Deactivate(t *testing.T) {
	sub := newActiveSubscription(t)
	closedAt := time.Now().UTC().Add(time.Hour)

	err := sub.Deactivate(closedAt)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusInactive, sub.Status())
	assert.Equal(t, closedAt, sub.EndDate())
	assert.False(t, sub.IsActive())
}

func TestSubscription_Deactivate_Idempotent(t *testing.T) {
	sub := newActiveSubscription(t)
	closedAt := time.Now().UTC()

	require.NoError(t, sub.Deactivate(closedAt))
	endAfterFirst := sub.EndDate()

	err := sub.Deactivate(closedAt.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, endAfterFirst, sub.EndDate())
}

func TestSubscription_Activate_FromTrial(t *testing.T) {
	start := time.Now().UTC()
	sub, err := NewSubscription(1, 1, vo.StatusTrial, start, start.AddDate(0, 0, 14))
	require.NoError(t, err)

	err = sub.Activate()

	require.NoError(t, err)
	assert.True(t, sub.IsActive())
}

func TestSubscription_Activate_FromInactive(t *testing.T) {
	sub := newActiveSubscription(t)
	require.NoError(t, sub.Deactivate(time.Now().UTC()))

	err := sub.Activate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition subscription")
}

func TestReconstructSubscription(t *testing.T) {
	now := time.Now().UTC()

	sub, err := ReconstructSubscription(9, 3, 5, vo.StatusActive,
		now, now.AddDate(1, 0, 0), now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(9), sub.ID())
	assert.True(t, sub.IsActive())
}

func TestReconstructSubscription_ZeroID(t *testing.T) {
	now := time.Now().UTC()

	sub, err := ReconstructSubscription(0, 3, 5, vo.StatusActive,
		now, now.AddDate(1, 0, 0), now, now)

	assert.Error(t, err)
	assert.Nil(t, sub)
}
