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

	"kostera/internal/application/auth/usecases"
	"kostera/internal/domain/tenant"
	"kostera/internal/domain/user"
	"kostera/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }

type mockRegisterUC struct {
	result *usecases.LoginResult
	err    error
	gotCmd usecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.LoginResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	router := gin.New()
	router.POST(path, handler)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthHandler_Register(t *testing.T) {
	tenantID := uint(3)
	registerUC := &mockRegisterUC{
		result: &usecases.LoginResult{
			AccessToken: "token-abc",
			ExpiresIn:   3600,
			User: usecases.AuthenticatedUser{
				ID:       1,
				Email:    "budi@kostmawar.test",
				FullName: "Budi Santoso",
				TenantID: &tenantID,
				Roles:    []string{"OWNER"},
			},
		},
	}
	handler := NewAuthHandler(registerUC, &mockLoginUC{}, nopLogger{})

	recorder := postJSON(t, handler.Register, "/auth/register", RegisterRequest{
		KostName: "Kost Mawar",
		Email:    "budi@kostmawar.test",
		Password: "secret12345",
		FullName: "Budi Santoso",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Kost Mawar", registerUC.gotCmd.KostName)
	assert.Contains(t, recorder.Body.String(), "token-abc")
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	registerUC := &mockRegisterUC{}
	handler := NewAuthHandler(registerUC, &mockLoginUC{}, nopLogger{})

	recorder := postJSON(t, handler.Register, "/auth/register", gin.H{
		"kost_name": "Kost Mawar",
		"email":     "not-an-email",
		"password":  "short",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, registerUC.gotCmd.Email)
}

func TestAuthHandler_Register_DuplicateSlug(t *testing.T) {
	registerUC := &mockRegisterUC{err: tenant.ErrSlugExists}
	handler := NewAuthHandler(registerUC, &mockLoginUC{}, nopLogger{})

	recorder := postJSON(t, handler.Register, "/auth/register", RegisterRequest{
		KostName: "Kost Mawar",
		Email:    "budi@kostmawar.test",
		Password: "secret12345",
		FullName: "Budi Santoso",
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{err: user.ErrInvalidCredentials}, nopLogger{})

	recorder := postJSON(t, handler.Login, "/auth/login", LoginRequest{
		Email:    "budi@kostmawar.test",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid credentials")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{
		result: &usecases.LoginResult{AccessToken: "token-xyz", ExpiresIn: 3600},
	}, nopLogger{})

	recorder := postJSON(t, handler.Login, "/auth/login", LoginRequest{
		Email:    "budi@kostmawar.test",
		Password: "secret12345",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "token-xyz")
}
