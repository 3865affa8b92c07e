package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "kostera/internal/application/subscription/dto"
	"kostera/internal/application/subscription/usecases"
	"kostera/internal/domain/subscription"
	"kostera/internal/shared/constants"
)

type mockCurrentPlanUC struct {
	result *subdto.CurrentPlanDTO
	err    error
}

func (m *mockCurrentPlanUC) Execute(ctx context.Context, tenantID uint) (*subdto.CurrentPlanDTO, error) {
	return m.result, m.err
}

type mockAssignPlanUC struct {
	result *subdto.SubscriptionDTO
	err    error
	gotCmd usecases.AssignPlanCommand
}

func (m *mockAssignPlanUC) Execute(ctx context.Context, cmd usecases.AssignPlanCommand) (*subdto.SubscriptionDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func withTenant(tenantID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyTenantID, tenantID)
		c.Next()
	}
}

func TestSubscriptionHandler_CurrentPlan(t *testing.T) {
	uc := &mockCurrentPlanUC{
		result: &subdto.CurrentPlanDTO{
			Plan:  subdto.PlanDTO{ID: 2, Name: "Pro", MaxRooms: 50, KostLimit: 100},
			Usage: subdto.UsageDTO{Rooms: 12, Staff: 3},
		},
	}
	handler := NewSubscriptionHandler(uc, &mockAssignPlanUC{}, nopLogger{})

	router := gin.New()
	router.GET("/subscription", withTenant(5), handler.CurrentPlan)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/subscription", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"Pro"`)
	assert.Contains(t, recorder.Body.String(), `"rooms":12`)
}

func TestSubscriptionHandler_CurrentPlan_NoSubscription(t *testing.T) {
	uc := &mockCurrentPlanUC{err: subscription.ErrNoActiveSubscription}
	handler := NewSubscriptionHandler(uc, &mockAssignPlanUC{}, nopLogger{})

	router := gin.New()
	router.GET("/subscription", withTenant(5), handler.CurrentPlan)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/subscription", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
}

func TestSubscriptionHandler_Upgrade(t *testing.T) {
	uc := &mockAssignPlanUC{
		result: &subdto.SubscriptionDTO{ID: 11, TenantID: 5, PlanID: 2, Status: "ACTIVE"},
	}
	handler := NewSubscriptionHandler(&mockCurrentPlanUC{}, uc, nopLogger{})

	router := gin.New()
	router.POST("/subscription/upgrade", withTenant(5), handler.Upgrade)

	payload, err := json.Marshal(AssignPlanRequest{PlanName: "Pro"})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/upgrade", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, uint(5), uc.gotCmd.TenantID)
	assert.Equal(t, "Pro", uc.gotCmd.PlanName)
}

func TestSubscriptionHandler_AssignPlan(t *testing.T) {
	uc := &mockAssignPlanUC{
		result: &subdto.SubscriptionDTO{ID: 10, TenantID: 7, PlanID: 2, Status: "ACTIVE"},
	}
	handler := NewSubscriptionHandler(&mockCurrentPlanUC{}, uc, nopLogger{})

	router := gin.New()
	router.POST("/admin/tenants/:id/subscription", handler.AssignPlan)

	payload, err := json.Marshal(AssignPlanRequest{PlanName: "Pro"})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/tenants/7/subscription", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, uint(7), uc.gotCmd.TenantID)
	assert.Equal(t, "Pro", uc.gotCmd.PlanName)
}

func TestSubscriptionHandler_AssignPlan_UnknownPlan(t *testing.T) {
	uc := &mockAssignPlanUC{err: subscription.ErrPlanNotFound}
	handler := NewSubscriptionHandler(&mockCurrentPlanUC{}, uc, nopLogger{})

	router := gin.New()
	router.POST("/admin/tenants/:id/subscription", handler.AssignPlan)

	payload, err := json.Marshal(AssignPlanRequest{PlanName: "Nonexistent"})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/tenants/7/subscription", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
