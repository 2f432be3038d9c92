package gate_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"auctionhouse/pkg/claims"
	"auctionhouse/pkg/gate"
	"auctionhouse/pkg/user"
)

func newClaims(id, username, role string) *claims.Claims {
	c := &claims.Claims{}
	c.User.ID = id
	c.User.Username = username
	c.User.Role = role
	return c
}

// countingLookup records how often the gate actually hits the session store.
type countingLookup struct {
	calls  int
	claims *claims.Claims
	err    error
}

func (l *countingLookup) lookup(r *http.Request) (*claims.Claims, error) {
	l.calls++
	return l.claims, l.err
}

func request(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func TestAuthorizePublicPaths(t *testing.T) {
	lookup := &countingLookup{}
	g := gate.New(gate.DefaultPolicy(), lookup.lookup)

	for _, path := range []string{
		"/",
		"/login",
		"/api/auctions/",
		"/api/auctions/507f1f77bcf86cd799439011",
		"/api/auctions/507f1f77bcf86cd799439011/details",
		"/dashboardish", // prefix must match whole segments
	} {
		decision := g.Authorize(request(path))
		assert.True(t, decision.Allowed, path)
		assert.Empty(t, decision.Location, path)
	}

	assert.Equal(t, 0, lookup.calls, "public paths must not trigger a session lookup")
}

func TestAuthorizeProtectedNoSession(t *testing.T) {
	lookup := &countingLookup{}
	g := gate.New(gate.DefaultPolicy(), lookup.lookup)

	decision := g.Authorize(request("/dashboard/settings"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login?callbackUrl=/dashboard/settings", decision.Location)
	assert.Equal(t, 1, lookup.calls)
}

func TestAuthorizeProtectedWithSession(t *testing.T) {
	lookup := &countingLookup{claims: newClaims("user123", "testuser", user.RoleUser)}
	g := gate.New(gate.DefaultPolicy(), lookup.lookup)

	for _, path := range []string{
		"/dashboard",
		"/dashboard/settings",
		"/api/dashboard/watchlist",
		"/api/auctions/507f1f77bcf86cd799439011/bid",
		"/api/auctions/507f1f77bcf86cd799439011/watchlist",
	} {
		decision := g.Authorize(request(path))
		assert.True(t, decision.Allowed, path)
		assert.NotNil(t, decision.Claims, path)
	}
}

func TestAuthorizeBidWatchlistSegments(t *testing.T) {
	lookup := &countingLookup{}
	g := gate.New(gate.DefaultPolicy(), lookup.lookup)

	bid := g.Authorize(request("/api/auctions/507f1f77bcf86cd799439011/bid"))
	assert.False(t, bid.Allowed)
	assert.Equal(t, "/login?callbackUrl=/api/auctions/507f1f77bcf86cd799439011/bid", bid.Location)

	details := g.Authorize(request("/api/auctions/507f1f77bcf86cd799439011/details"))
	assert.True(t, details.Allowed)

	assert.Equal(t, 1, lookup.calls, "only the bid path may trigger a lookup")
}

func TestAuthorizeFailsClosed(t *testing.T) {
	lookup := &countingLookup{err: errors.New("credential store unreachable")}
	g := gate.New(gate.DefaultPolicy(), lookup.lookup)

	decision := g.Authorize(request("/dashboard/settings"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login?callbackUrl=/dashboard/settings", decision.Location)
}

func TestAuthorizeAdminLevel(t *testing.T) {
	t.Run("non-admin sent home, not to login", func(t *testing.T) {
		lookup := &countingLookup{claims: newClaims("user123", "testuser", user.RoleUser)}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)

		decision := g.Authorize(request("/api/admin/users"))

		assert.False(t, decision.Allowed)
		assert.Equal(t, "/", decision.Location)
	})

	t.Run("admin allowed", func(t *testing.T) {
		lookup := &countingLookup{claims: newClaims("admin123", "admin", user.RoleAdmin)}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)

		decision := g.Authorize(request("/api/admin/users"))

		assert.True(t, decision.Allowed)
	})

	t.Run("unauthenticated gets login redirect", func(t *testing.T) {
		lookup := &countingLookup{}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)

		decision := g.Authorize(request("/api/admin/users"))

		assert.False(t, decision.Allowed)
		assert.Equal(t, "/login?callbackUrl=/api/admin/users", decision.Location)
	})
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
		if ok && c != nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("redirects without session", func(t *testing.T) {
		lookup := &countingLookup{}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)
		handler := g.Middleware()(next)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, request("/dashboard/settings"))

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "/login?callbackUrl=/dashboard/settings", w.Header().Get("Location"))
	})

	t.Run("forwards with claims in context", func(t *testing.T) {
		lookup := &countingLookup{claims: newClaims("user123", "testuser", user.RoleUser)}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)
		handler := g.Middleware()(next)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, request("/dashboard/settings"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forwards public path without claims", func(t *testing.T) {
		lookup := &countingLookup{}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)
		handler := g.Middleware()(next)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, request("/api/auctions/"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 0, lookup.calls)
	})
}

func TestClaimsLoader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims); ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("attaches claims when session valid", func(t *testing.T) {
		lookup := &countingLookup{claims: newClaims("user123", "testuser", user.RoleUser)}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)
		handler := g.ClaimsLoader()(next)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, request("/api/auctions"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forwards without claims when lookup fails", func(t *testing.T) {
		lookup := &countingLookup{err: errors.New("bad token")}
		g := gate.New(gate.DefaultPolicy(), lookup.lookup)
		handler := g.ClaimsLoader()(next)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, request("/api/auctions"))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPolicyMatching(t *testing.T) {
	entry := gate.PolicyEntry{Prefix: "/api/auctions/", Segments: []string{"bid", "watchlist"}}

	assert.True(t, entry.Matches("/api/auctions/507f1f77bcf86cd799439011/bid"))
	assert.True(t, entry.Matches("/api/auctions/507f1f77bcf86cd799439011/watchlist"))
	assert.False(t, entry.Matches("/api/auctions/507f1f77bcf86cd799439011/details"))
	assert.False(t, entry.Matches("/api/auctions/507f1f77bcf86cd799439011"))
	assert.False(t, entry.Matches("/api/users/507f1f77bcf86cd799439011/bid"))

	prefix := gate.PolicyEntry{Prefix: "/dashboard"}
	assert.True(t, prefix.Matches("/dashboard"))
	assert.True(t, prefix.Matches("/dashboard/settings"))
	assert.False(t, prefix.Matches("/dashboardsettings"))
}
