package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulbid/admin-console/internal/config"
	"github.com/haulbid/admin-console/internal/logging"
	"github.com/haulbid/admin-console/internal/session"
)

// fakePlatform emulates the platform admin API closely enough to drive the
// console end to end.
type fakePlatform struct {
	userListHits atomic.Int64
	historyHits  atomic.Int64
	failUserList atomic.Bool
}

func (f *fakePlatform) handler() http.Handler {
	mux := http.NewServeMux()

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return false
		}
		return true
	}

	mux.HandleFunc("POST /admin/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Identifier string `json:"identifier"`
			Password   string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Identifier != "admin@haulbid.io" || body.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token": "tok-1", "role": "superadmin", "userId": "staff-1",
		})
	})

	mux.HandleFunc("GET /admin/get-all-users", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if f.failUserList.Load() {
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "users backend unavailable"})
			return
		}
		f.userListHits.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data": []map[string]any{
				{"_id": "u1", "full_name": "Ada Lovelace", "email": "ada@acme.com", "status": "pending"},
			},
		})
	})

	mux.HandleFunc("GET /admin/get-all-transporters", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data": []map[string]any{
				{"_id": "t1", "full_name": "Grace Hopper", "email": "grace@navy.mil", "status": "approved"},
			},
		})
	})

	mux.HandleFunc("GET /admin/get-transporter-withdraw-history/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		f.historyHits.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data": []map[string]any{
				{"_id": "wr1", "user": "t1", "amount": 250.0, "status": "pending"},
			},
		})
	})

	mux.HandleFunc("GET /admin/get-all-withdrawal-requests", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data": []map[string]any{
				{"_id": "w1", "amount": 250.0, "status": "pending",
					"user": map[string]any{"_id": "t1", "full_name": "Grace Hopper", "email": "grace@navy.mil"}},
			},
		})
	})

	mux.HandleFunc("POST /admin/update-user-status", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User status updated"})
	})

	mux.HandleFunc("POST /admin/update-withdrawal-request-status", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Withdrawal request updated"})
	})

	return mux
}

func testConfig(apiBaseURL string) config.Config {
	return config.Config{
		AppName:         "console-test",
		AppEnv:          "development",
		Port:            "0",
		APIBaseURL:      apiBaseURL,
		CookieSecret:    "test-cookie-secret",
		SessionTTL:      time.Hour,
		CacheTTL:        time.Minute,
		UpstreamTimeout: 5 * time.Second,
		LoginRateLimit:  100,
	}
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

func signIn(t *testing.T, srv *Server) string {
	t.Helper()
	resp, err := srv.app.Test(formRequest("/admin/login", url.Values{
		"identifier": {"admin@haulbid.io"},
		"password":   {"hunter2"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	return sessionCookie(t, resp)
}

func TestConsoleLoginBrowseMutate(t *testing.T) {
	platform := &fakePlatform{}
	upstream := httptest.NewServer(platform.handler())
	defer upstream.Close()

	srv, err := New(testConfig(upstream.URL), nil, logging.Discard())
	require.NoError(t, err)

	// Signed-out navigation bounces to login with the return path preserved.
	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/admin/users", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/admin/login?next=")

	// Wrong password renders the login page again with the backend message.
	resp, err = srv.app.Test(formRequest("/admin/login", url.Values{
		"identifier": {"admin@haulbid.io"},
		"password":   {"wrong"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Cookies())

	// Correct credentials set the session cookie and land on the dashboard.
	resp, err = srv.app.Test(formRequest("/admin/login", url.Values{
		"identifier": {"admin@haulbid.io"},
		"password":   {"hunter2"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))
	cookie := sessionCookie(t, resp)

	get := func(path string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Cookie", session.CookieName+"="+cookie)
		resp, err := srv.app.Test(req)
		require.NoError(t, err)
		return resp
	}

	// Users page renders from upstream.
	resp = get("/admin/users")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Ada Lovelace")
	assert.Equal(t, int64(1), platform.userListHits.Load())

	// Second visit is served from cache.
	resp = get("/admin/users")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), platform.userListHits.Load())

	// A status mutation redirects back and invalidates the cached list.
	req := formRequest("/admin/users/u1/status", url.Values{"status": {"approved"}})
	req.Header.Set("Cookie", session.CookieName+"="+cookie)
	resp, err = srv.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/users", resp.Header.Get("Location"))

	resp = get("/admin/users")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), platform.userListHits.Load())

	// Logout clears the session; the next visit bounces to login.
	req = formRequest("/admin/logout", url.Values{})
	req.Header.Set("Cookie", session.CookieName+"="+cookie)
	resp, err = srv.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))

	resp = get("/admin/users")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/admin/login?next=")
}

func TestUserDetailShowsBannerWhenListFetchFails(t *testing.T) {
	platform := &fakePlatform{}
	upstream := httptest.NewServer(platform.handler())
	defer upstream.Close()

	srv, err := New(testConfig(upstream.URL), nil, logging.Discard())
	require.NoError(t, err)
	cookie := signIn(t, srv)

	platform.failUserList.Store(true)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/u1", nil)
	req.Header.Set("Cookie", session.CookieName+"="+cookie)
	resp, err := srv.app.Test(req)
	require.NoError(t, err)

	// The page must render with the upstream message inline, never 500.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "users backend unavailable")
}

func TestWithdrawalMutationInvalidatesRequesterHistory(t *testing.T) {
	platform := &fakePlatform{}
	upstream := httptest.NewServer(platform.handler())
	defer upstream.Close()

	srv, err := New(testConfig(upstream.URL), nil, logging.Discard())
	require.NoError(t, err)
	cookie := signIn(t, srv)

	get := func(path string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Cookie", session.CookieName+"="+cookie)
		resp, err := srv.app.Test(req)
		require.NoError(t, err)
		return resp
	}

	// Two visits, one upstream history fetch: the second is cached.
	resp := get("/admin/transporters/t1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = get("/admin/transporters/t1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), platform.historyHits.Load())

	// Reviewing the withdrawal drops the requester's cached history too.
	req := formRequest("/admin/requests/w1/status", url.Values{
		"status":  {"approved"},
		"user_id": {"t1"},
	})
	req.Header.Set("Cookie", session.CookieName+"="+cookie)
	resp, err = srv.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/requests", resp.Header.Get("Location"))

	resp = get("/admin/transporters/t1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), platform.historyHits.Load())
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	upstream := httptest.NewServer((&fakePlatform{}).handler())
	defer upstream.Close()

	srv, err := New(testConfig(upstream.URL), nil, logging.Discard())
	require.NoError(t, err)

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Page not found")
}

func TestRootRedirectsToDashboard(t *testing.T) {
	upstream := httptest.NewServer((&fakePlatform{}).handler())
	defer upstream.Close()

	srv, err := New(testConfig(upstream.URL), nil, logging.Discard())
	require.NoError(t, err)

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))
}

func TestHealthz(t *testing.T) {
	upstream := httptest.NewServer((&fakePlatform{}).handler())
	defer upstream.Close()

	srv, err := New(testConfig(upstream.URL), nil, logging.Discard())
	require.NoError(t, err)

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
