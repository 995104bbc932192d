package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/auth"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/session"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/config"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

func newAuthUseCase(t *testing.T, backend http.Handler) (*auth.UseCase, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := session.New(rdb, time.Hour)

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	api := insurai.New(config.APIConfig{BaseURL: srv.URL + "/api", TimeoutSeconds: 5}, log)
	return auth.New(api, store, log), store
}

func loginBackend(body string, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			http.NotFound(w, r)
			return
		}
		if status >= 400 {
			http.Error(w, body, status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestLogin_EmployeePersistsEmployeeID(t *testing.T) {
	uc, store := newAuthUseCase(t,
		loginBackend(`{"token":"jwt","username":"worker","role":"EMPLOYEE","userId":7,"employeeId":42}`, 200))

	sid, sess, err := uc.Login(context.Background(), "", "worker", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, sid)
	require.NotNil(t, sess.EmployeeID)
	assert.Equal(t, int64(42), *sess.EmployeeID)

	stored, err := store.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, "jwt", stored.Token)
	assert.Equal(t, entity.RoleEmployee, stored.Role)
	require.NotNil(t, stored.EmployeeID)
	assert.Equal(t, int64(42), *stored.EmployeeID)
}

// An admin signing in over an employee's old session id must not inherit the
// cached employeeId.
func TestLogin_ReloginDropsStaleEmployeeID(t *testing.T) {
	responses := map[string]string{
		"worker": `{"token":"jwt","username":"worker","role":"EMPLOYEE","userId":7,"employeeId":42}`,
		"boss":   `{"token":"jwt2","username":"boss","role":"ADMIN","userId":8}`,
	}
	uc, store := newAuthUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responses[in.Username]))
	}))

	sid, _, err := uc.Login(context.Background(), "", "worker", "pw")
	require.NoError(t, err)

	sid2, _, err := uc.Login(context.Background(), sid, "boss", "pw")
	require.NoError(t, err)
	assert.Equal(t, sid, sid2, "an existing session id is reused")

	stored, err := store.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
	assert.Nil(t, stored.EmployeeID, "stale employeeId must be gone after re-login")
}

func TestLogin_BadCredentials(t *testing.T) {
	uc, store := newAuthUseCase(t, loginBackend("Invalid username or password", 401))

	sid, _, err := uc.Login(context.Background(), "", "worker", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Invalid username or password", insurai.Reason(err))
	assert.Empty(t, sid)

	_, err = store.Get(context.Background(), sid)
	assert.Error(t, err, "no session may exist after a failed login")
}

func TestLogin_UnroutableRole(t *testing.T) {
	uc, _ := newAuthUseCase(t,
		loginBackend(`{"token":"jwt","username":"x","role":"AUDITOR","userId":9}`, 200))

	_, _, err := uc.Login(context.Background(), "", "x", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignup_NeverAuthenticates(t *testing.T) {
	var sawSignup bool
	uc, store := newAuthUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/signup" {
			sawSignup = true
			w.WriteHeader(http.StatusCreated)
			return
		}
		http.NotFound(w, r)
	}))

	err := uc.Signup(context.Background(), "newbie", "n@x.io", "pw", entity.RoleEmployee)
	require.NoError(t, err)
	assert.True(t, sawSignup)

	// Nothing was written anywhere; there is no sid to look up, and the store
	// must still be empty for any id.
	_, err = store.Get(context.Background(), "any")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSignup_RejectsUnknownRole(t *testing.T) {
	uc, _ := newAuthUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called for an invalid role")
	}))

	err := uc.Signup(context.Background(), "newbie", "n@x.io", "pw", entity.Role("SUPERUSER"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogout_ClearsSession(t *testing.T) {
	uc, store := newAuthUseCase(t,
		loginBackend(`{"token":"jwt","username":"worker","role":"EMPLOYEE","userId":7,"employeeId":42}`, 200))

	sid, _, err := uc.Login(context.Background(), "", "worker", "pw")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), sid))
	_, err = store.Get(context.Background(), sid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
