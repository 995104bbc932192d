package insurai_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/config"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

func newTestClient(t *testing.T, handler http.Handler) *insurai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return insurai.New(config.APIConfig{
		BaseURL:        srv.URL + "/api",
		TimeoutSeconds: 5,
		RetryMax:       2,
	}, logger.New(logger.Config{Env: "test", Level: "error"}))
}

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusBadRequest, domain.ErrValidation},
	}
	for _, tc := range cases {
		api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))
		_, err := api.Policies(context.Background(), "tok")
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}
}

func TestBackendMessageSurfaces(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Claim already settled", http.StatusConflict)
	}))

	_, err := api.Policies(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "Claim already settled", insurai.Reason(err))
}

func TestGetRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"policyName":"Health Plus"}]`))
	}))

	policies, err := api.Policies(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.Equal(t, "Health Plus", policies[0].PolicyName)
	assert.Equal(t, int32(2), calls.Load(), "first attempt fails, retry succeeds")
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "not yours", http.StatusForbidden)
	}))

	_, err := api.Policies(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, int32(1), calls.Load(), "4xx answers are final")
}

// Mutations go out exactly once whatever the answer; a duplicated settle or
// booking is worse than a failed click.
func TestMutationsNeverRetry(t *testing.T) {
	var calls atomic.Int32
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := api.UpdateClaimStatus(context.Background(), "tok", 5, entity.ClaimApproved)
	assert.ErrorIs(t, err, domain.ErrServer)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAuthorizationHeader(t *testing.T) {
	var got string
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := api.Claims(context.Background(), "my-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", got)
}

func TestLoginDecodesEmployeeID(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"jwt","username":"worker","role":"EMPLOYEE","userId":7,"employeeId":42}`))
	}))

	out, err := api.Login(context.Background(), "worker", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt", out.Token)
	assert.Equal(t, entity.RoleEmployee, out.Role)
	require.NotNil(t, out.EmployeeID)
	assert.Equal(t, int64(42), *out.EmployeeID)
}

func TestLoginWithoutEmployeeID(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"jwt","username":"boss","role":"ADMIN","userId":1}`))
	}))

	out, err := api.Login(context.Background(), "boss", "pw")
	require.NoError(t, err)
	assert.Nil(t, out.EmployeeID)
}

func TestDocumentURL(t *testing.T) {
	api := insurai.New(config.APIConfig{BaseURL: "http://backend:8080/api", TimeoutSeconds: 5},
		logger.New(logger.Config{Env: "test", Level: "error"}))

	cases := map[string]string{
		"uploads/claims/report.pdf":   "http://backend:8080/api/claims/view-document/report.pdf",
		"/var/data/claims/photo.jpg":  "http://backend:8080/api/claims/view-document/photo.jpg",
		"receipt.png":                 "http://backend:8080/api/claims/view-document/receipt.png",
		"a\\mixed/style/statement.pdf": "http://backend:8080/api/claims/view-document/statement.pdf",
	}
	for stored, want := range cases {
		assert.Equal(t, want, api.DocumentURL(stored), "stored path %q", stored)
	}
}
