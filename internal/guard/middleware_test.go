package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"clubhub/internal/profile"
	"clubhub/internal/session"
)

type staticSource struct {
	st session.State
}

func (s *staticSource) State() session.State { return s.st }

func runGuarded(t *testing.T, st session.State, required profile.Role) *httptest.ResponseRecorder {
	t.Helper()
	handler := Middleware(&staticSource{st: st}, required, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/clubs", nil))
	return rr
}

func TestMiddleware_Loading(t *testing.T) {
	rr := runGuarded(t, session.State{Loading: true}, profile.RoleUnset)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
}

func TestMiddleware_RedirectToSignIn(t *testing.T) {
	rr := runGuarded(t, session.State{}, profile.RoleUnset)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, SignInPath, rr.Header().Get("Location"))
}

func TestMiddleware_PendingApproval(t *testing.T) {
	st := signedIn(&profile.Profile{ID: "u1", Role: profile.RoleStudent, Email: "u1@example.com"})
	rr := runGuarded(t, st, profile.RoleStudent)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "pending_approval")
}

func TestMiddleware_RoleMismatchRedirects(t *testing.T) {
	st := signedIn(&profile.Profile{ID: "u1", Role: profile.RoleTeacher, SchoolID: "s1", Email: "u1@example.com"})
	rr := runGuarded(t, st, profile.RoleAdmin)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/teacher/dashboard", rr.Header().Get("Location"))
}

func TestMiddleware_AuthorizedPassesThrough(t *testing.T) {
	st := signedIn(&profile.Profile{ID: "u1", Role: profile.RoleAdmin, SchoolID: "s1", Email: "u1@example.com"})
	rr := runGuarded(t, st, profile.RoleAdmin)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}
