package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/domain/tenant"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockTenantRepository struct {
	tenant.TenantRepository

	GetByIDFunc func(ctx context.Context, id uint) (*tenant.Tenant, error)
}

func (m *mockTenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, tenant.ErrTenantNotFound
}

type mockLimitChecker struct {
	err   error
	calls int
}

func (m *mockLimitChecker) Execute(ctx context.Context, tenantID uint, resource vo.LimitResource) error {
	m.calls++
	return m.err
}

type mockFeatureChecker struct {
	err error
}

func (m *mockFeatureChecker) Execute(ctx context.Context, tenantID uint, feature vo.Feature) error {
	return m.err
}

func performRequest(t *testing.T, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.GET("/protected", append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})...)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func setIdentity(tenantID *uint, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(1))
		if tenantID != nil {
			c.Set(constants.ContextKeyTenantID, *tenantID)
		}
		c.Set(constants.ContextKeyUserRoles, roles)
		c.Next()
	}
}

func activeTenant(t *testing.T, id uint) *tenant.Tenant {
	t.Helper()
	now := time.Now()
	tn, err := tenant.ReconstructTenant(id, "Kost Bahagia Group", "kost-bahagia", "", "Indonesia", true, now, now)
	require.NoError(t, err)
	return tn
}

func suspendedTenant(t *testing.T, id uint) *tenant.Tenant {
	t.Helper()
	now := time.Now()
	tn, err := tenant.ReconstructTenant(id, "Kost Bahagia Group", "kost-bahagia", "", "Indonesia", false, now, now)
	require.NoError(t, err)
	return tn
}

func TestRequireTenant_MissingTenantContext(t *testing.T) {
	guard := NewTenantGuard(&mockTenantRepository{}, nopLogger{})

	recorder := performRequest(t, setIdentity(nil, "OWNER"), guard.RequireTenant())

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Tenant context required")
}

func TestRequireTenant_SuspendedTenant(t *testing.T) {
	tenantID := uint(5)
	repo := &mockTenantRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			return suspendedTenant(t, id), nil
		},
	}
	guard := NewTenantGuard(repo, nopLogger{})

	recorder := performRequest(t, setIdentity(&tenantID, "OWNER"), guard.RequireTenant())

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Tenant account is suspended")
}

func TestRequireTenant_ActiveTenantPasses(t *testing.T) {
	tenantID := uint(5)
	repo := &mockTenantRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			return activeTenant(t, id), nil
		},
	}
	guard := NewTenantGuard(repo, nopLogger{})

	recorder := performRequest(t, setIdentity(&tenantID, "OWNER"), guard.RequireTenant())

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireTenant_SuperadminBypasses(t *testing.T) {
	repo := &mockTenantRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			t.Fatal("superadmin requests must not load a tenant")
			return nil, nil
		},
	}
	guard := NewTenantGuard(repo, nopLogger{})

	recorder := performRequest(t, setIdentity(nil, "SUPERADMIN"), guard.RequireTenant())

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGuardChain_RoleStageRunsBeforeTenantStage(t *testing.T) {
	repo := &mockTenantRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			t.Fatal("role denial must short-circuit before the tenant guard")
			return nil, nil
		},
	}
	guard := NewTenantGuard(repo, nopLogger{})

	// A customer with no tenant context fails both stages; the role
	// denial is the one the caller sees.
	recorder := performRequest(t,
		setIdentity(nil, "CUSTOMER"),
		RequireRoles(authorization.RoleTenant),
		guard.RequireTenant())

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "insufficient role")
	assert.NotContains(t, recorder.Body.String(), "Tenant context required")
}

func TestCheckLimit_DenialIsForbidden(t *testing.T) {
	tenantID := uint(5)
	checker := &mockLimitChecker{
		err: &subscription.LimitReachedError{Resource: vo.LimitRooms, Limit: 10},
	}
	guard := NewPlanGuard(checker, &mockFeatureChecker{}, nopLogger{})

	recorder := performRequest(t, setIdentity(&tenantID, "OWNER"), guard.CheckLimit(vo.LimitRooms))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Plan limit reached for maxRooms (10)")
}

func TestCheckLimit_NoSubscriptionIsForbidden(t *testing.T) {
	tenantID := uint(5)
	checker := &mockLimitChecker{err: subscription.ErrNoActiveSubscription}
	guard := NewPlanGuard(checker, &mockFeatureChecker{}, nopLogger{})

	recorder := performRequest(t, setIdentity(&tenantID, "OWNER"), guard.CheckLimit(vo.LimitRooms))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No active subscription found")
}

func TestCheckLimit_StoreFailureIsNotDenial(t *testing.T) {
	tenantID := uint(5)
	checker := &mockLimitChecker{err: errors.New("connection refused")}
	guard := NewPlanGuard(checker, &mockFeatureChecker{}, nopLogger{})

	recorder := performRequest(t, setIdentity(&tenantID, "OWNER"), guard.CheckLimit(vo.LimitRooms))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "failed to verify plan")
}

func TestCheckLimit_UnderLimitPasses(t *testing.T) {
	tenantID := uint(5)
	checker := &mockLimitChecker{}
	guard := NewPlanGuard(checker, &mockFeatureChecker{}, nopLogger{})

	recorder := performRequest(t, setIdentity(&tenantID, "OWNER"), guard.CheckLimit(vo.LimitRooms))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, checker.calls)
}

func TestCheckLimit_NoTenantContextSkipsCheck(t *testing.T) {
	checker := &mockLimitChecker{err: subscription.ErrNoActiveSubscription}
	guard := NewPlanGuard(checker, &mockFeatureChecker{}, nopLogger{})

	recorder := performRequest(t, setIdentity(nil, "SUPERADMIN"), guard.CheckLimit(vo.LimitRooms))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Zero(t, checker.calls)
}

func TestRequireFeature_DeniedFeature(t *testing.T) {
	tenantID := uint(5)
	checker := &mockFeatureChecker{
		err: &subscription.FeatureNotSupportedError{Feature: vo.FeatureFinance},
	}
	guard := NewPlanGuard(&mockLimitChecker{}, checker, nopLogger{})

	recorder := performRequest(t, setIdentity(&tenantID, "OWNER"), guard.RequireFeature(vo.FeatureFinance))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Plan does not support feature: allowFinance")
}

func TestRequireRoles_Expansion(t *testing.T) {
	tests := []struct {
		name       string
		required   []authorization.Role
		roles      []string
		wantStatus int
	}{
		{"owner satisfies tenant", []authorization.Role{authorization.RoleTenant}, []string{"OWNER"}, http.StatusOK},
		{"staff satisfies tenant", []authorization.Role{authorization.RoleTenant}, []string{"STAFF"}, http.StatusOK},
		{"staff satisfies tenant staff", []authorization.Role{authorization.RoleTenantStaff}, []string{"STAFF"}, http.StatusOK},
		{"customer denied", []authorization.Role{authorization.RoleTenant}, []string{"CUSTOMER"}, http.StatusForbidden},
		{"tenant never implies superadmin", []authorization.Role{authorization.RoleSuperadmin}, []string{"OWNER", "STAFF"}, http.StatusForbidden},
		{"superadmin explicit", []authorization.Role{authorization.RoleSuperadmin}, []string{"SUPERADMIN"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := performRequest(t, setIdentity(nil, tt.roles...), RequireRoles(tt.required...))
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
