package httptransport_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub/internal/admin"
	"clubhub/internal/broadcast"
	"clubhub/internal/club"
	clubhandler "clubhub/internal/club/handler"
	clubmem "clubhub/internal/club/store/memory"
	"clubhub/internal/identity"
	identityhandler "clubhub/internal/identity/handler"
	"clubhub/internal/profile"
	profilemem "clubhub/internal/profile/store/memory"
	"clubhub/internal/session"
	sessionhandler "clubhub/internal/session/handler"
	httptransport "clubhub/internal/transport/http"
	"clubhub/pkg/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildStack wires the full in-memory server the way main does.
func buildStack(t *testing.T) (http.Handler, *identity.LocalProvider, *session.Manager) {
	t.Helper()
	logger := testLogger()

	provider := identity.NewLocalProvider()
	hash, err := identity.HashPassword("hunter2!")
	require.NoError(t, err)
	provider.Register(identity.Account{
		ID:            "u1",
		Email:         "bart@example.com",
		PasswordHash:  hash,
		EmailVerified: true,
	})

	profiles := profilemem.New()
	require.NoError(t, profiles.SaveProfile(context.Background(), &profile.Profile{
		ID:       "u1",
		Role:     profile.RoleStudent,
		SchoolID: "s1",
	}))

	bus := broadcast.NewBus()
	manager := session.NewManager(provider, profiles, bus, session.WithLogger(logger))
	manager.Start(context.Background())
	t.Cleanup(manager.Close)

	tokens := identity.NewTokenService("test-signing-key", "clubhub-test")
	validator := identity.NewTokenServiceAdapter(tokens)

	clubService, err := club.NewService(clubmem.New(), club.WithLogger(logger))
	require.NoError(t, err)
	adminService, err := admin.NewService(profiles, bus, admin.WithLogger(logger))
	require.NoError(t, err)

	router := httptransport.NewRouter(
		identityhandler.New(provider, tokens, logger, nil),
		sessionhandler.New(manager, logger, nil, validator),
		clubhandler.New(clubService, manager, logger, nil, validator),
		admin.NewHandler(adminService, manager, logger, nil, validator),
	)
	return router, provider, manager
}

func TestHealthz(t *testing.T) {
	router, _, _ := buildStack(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "status", "ok")
}

func TestSignInFlow(t *testing.T) {
	router, _, manager := buildStack(t)
	var token string

	testutil.Given(t, "a registered student", func(t *testing.T) {
		testutil.When(t, "they sign in", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/login",
				map[string]string{"email": "bart@example.com", "password": "hunter2!"}))

			testutil.AssertStatusOK(t, rr)
			resp := testutil.UnmarshalResponse[map[string]any](t, rr)
			token = (*resp)["access_token"].(string)
			require.NotEmpty(t, token)
		})

		testutil.Then(t, "the session settles on their profile", func(t *testing.T) {
			require.Eventually(t, func() bool {
				st := manager.State()
				return !st.Loading && st.Profile != nil
			}, 2*time.Second, 10*time.Millisecond)

			req := testutil.NewRequest(t, http.MethodGet, "/session")
			req.Header.Set("Authorization", "Bearer "+token)
			rr := testutil.DoRequest(router, req)

			testutil.AssertStatusOK(t, rr)
			testutil.AssertJSONContains(t, rr, "redirect_to", "/student/dashboard")
		})

		testutil.Then(t, "they can create a club in their school", func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/clubs", map[string]any{
				"name": "Chess Club",
				"tags": []string{"Chess", "games"},
			})
			req.Header.Set("Authorization", "Bearer "+token)
			rr := testutil.DoRequest(router, req)

			testutil.AssertStatus(t, rr, http.StatusCreated)
			testutil.AssertJSONContains(t, rr, "school_id", "s1")
		})

		testutil.Then(t, "the admin surface redirects them to their dashboard", func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPut, "/admin/users/u2/role",
				map[string]string{"role": "teacher"})
			req.Header.Set("Authorization", "Bearer "+token)
			rr := testutil.DoRequest(router, req)

			testutil.AssertStatus(t, rr, http.StatusSeeOther)
			assert.Equal(t, "/student/dashboard", rr.Result().Header.Get("Location"))
		})
	})
}

func TestSignOutEndsSession(t *testing.T) {
	router, provider, manager := buildStack(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "bart@example.com", "password": "hunter2!"}))
	testutil.AssertStatusOK(t, rr)
	require.Eventually(t, func() bool { return !manager.State().Loading }, 2*time.Second, 10*time.Millisecond)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/auth/logout"))
	testutil.AssertStatus(t, rr, http.StatusNoContent)

	assert.Nil(t, provider.Current())
	assert.False(t, manager.State().SignedIn())
}
