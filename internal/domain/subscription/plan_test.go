package subscription

import (
	"strings"
	"testing"
	"time"

	vo "kostera/internal/domain/subscription/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBasicPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlan("Basic", 150000, 10, 1, 1000, false, false, false)
	require.NoError(t, err)
	require.NotNil(t, plan)
	return plan
}

func newProPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlan("Pro", 450000, 50, 5, 10000, true, true, true)
	require.NoError(t, err)
	require.NotNil(t, plan)
	return plan
}

func TestNewPlan_ValidInput(t *testing.T) {
	plan, err := NewPlan("Pro", 450000, 50, 5, 10000, true, true, true)

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "Pro", plan.Name())
	assert.Equal(t, uint64(450000), plan.Price())
	assert.Equal(t, 50, plan.MaxRooms())
	assert.Equal(t, 5, plan.MaxStaff())
	assert.Equal(t, 10000, plan.MaxAPICalls())
	assert.True(t, plan.AllowMultiBranch())
	assert.True(t, plan.AllowFinance())
	assert.True(t, plan.AllowExport())
}

func TestNewPlan_EmptyName(t *testing.T) {
	plan, err := NewPlan("", 0, 10, 1, 1000, false, false, false)

	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "plan name is required")
}

func TestNewPlan_NameTooLong(t *testing.T) {
	plan, err := NewPlan(strings.Repeat("a", 101), 0, 10, 1, 1000, false, false, false)

	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "plan name too long")
}

func TestNewPlan_NegativeLimits(t *testing.T) {
	tests := []struct {
		name     string
		maxRooms int
		maxStaff int
		maxAPI   int
		wantErr  string
	}{
		{"negative rooms", -1, 1, 1000, "max rooms cannot be negative"},
		{"negative staff", 10, -1, 1000, "max staff cannot be negative"},
		{"negative api calls", 10, 1, -1, "max API calls cannot be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := NewPlan("Basic", 0, tc.maxRooms, tc.maxStaff, tc.maxAPI, false, false, false)
			assert.Error(t, err)
			assert.Nil(t, plan)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPlan_KostLimit(t *testing.T) {
	basic := newBasicPlan(t)
	pro := newProPlan(t)

	assert.Equal(t, 1, basic.KostLimit())
	assert.Equal(t, 100, pro.KostLimit())
}

func TestPlan_KostLimitFollowsFlag(t *testing.T) {
	plan := newBasicPlan(t)
	require.Equal(t, 1, plan.KostLimit())

	plan.UpdateFlags(true, false, false)
	assert.Equal(t, 100, plan.KostLimit())

	plan.UpdateFlags(false, false, false)
	assert.Equal(t, 1, plan.KostLimit())
}

func TestPlan_LimitFor(t *testing.T) {
	plan := newProPlan(t)

	tests := []struct {
		name     string
		resource vo.LimitResource
		want     int
	}{
		{"rooms", vo.LimitRooms, 50},
		{"staff", vo.LimitStaff, 5},
		{"kosts derived from multi-branch", vo.LimitKosts, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := plan.LimitFor(tc.resource)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlan_LimitFor_UnknownResource(t *testing.T) {
	plan := newBasicPlan(t)

	_, err := plan.LimitFor(vo.LimitResource("maxWidgets"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown limit resource")
}

func TestPlan_HasFeature(t *testing.T) {
	basic := newBasicPlan(t)
	pro := newProPlan(t)

	assert.False(t, basic.HasFeature(vo.FeatureFinance))
	assert.False(t, basic.HasFeature(vo.FeatureExport))
	assert.True(t, pro.HasFeature(vo.FeatureFinance))
	assert.True(t, pro.HasFeature(vo.FeatureExport))
	assert.False(t, pro.HasFeature(vo.Feature("allowTeleport")))
}

func TestPlan_UpdateLimits(t *testing.T) {
	plan := newBasicPlan(t)

	err := plan.UpdateLimits(20, 2, 2000)
	require.NoError(t, err)
	assert.Equal(t, 20, plan.MaxRooms())
	assert.Equal(t, 2, plan.MaxStaff())
	assert.Equal(t, 2000, plan.MaxAPICalls())

	err = plan.UpdateLimits(-1, 2, 2000)
	assert.Error(t, err)
}

func TestReconstructPlan(t *testing.T) {
	src := newProPlan(t)

	plan, err := ReconstructPlan(7, src.Name(), src.Price(), src.MaxRooms(),
		src.MaxStaff(), src.MaxAPICalls(), src.AllowMultiBranch(),
		src.AllowFinance(), src.AllowExport(), src.CreatedAt(), src.UpdatedAt())

	require.NoError(t, err)
	assert.Equal(t, uint(7), plan.ID())
	assert.Equal(t, "Pro", plan.Name())
	assert.Equal(t, 100, plan.KostLimit())
}

func TestReconstructPlan_ZeroID(t *testing.T) {
	plan, err := ReconstructPlan(0, "Basic", 0, 10, 1, 1000, false, false, false,
		planTime(t), planTime(t))

	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "plan ID cannot be zero")
}

func planTime(t *testing.T) (tm time.Time) {
	t.Helper()
	return time.Now().UTC()
}
