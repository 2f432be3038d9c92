package gate

import (
	"context"
	"net/http"

	"auctionhouse/pkg/claims"
)

const (
	defaultLoginPath = "/login"
	defaultHomePath  = "/"
	callbackParam    = "callbackUrl"
)

// Lookup pulls the session for a request (token cookie / Authorization header
// plus a liveness check against the session store). Returning (nil, nil) means
// no session; errors are treated the same way, the gate fails closed.
type Lookup func(r *http.Request) (*claims.Claims, error)

// Decision is the gate's whole output: either the request passes (with the
// resolved claims, when a lookup ran) or it is redirected. Keeping this a
// value instead of writing the response directly keeps Authorize pure.
type Decision struct {
	Allowed  bool
	Location string
	Claims   *claims.Claims
}

type Gate struct {
	Policy    PolicyTable
	Lookup    Lookup
	LoginPath string
	HomePath  string
}

func New(policy PolicyTable, lookup Lookup) *Gate {
	return &Gate{
		Policy:    policy,
		Lookup:    lookup,
		LoginPath: defaultLoginPath,
		HomePath:  defaultHomePath,
	}
}

// Authorize checks the request path against the policy table. Paths outside
// the table are allowed without touching the session store. Protected paths
// require a live session; the login redirect carries the original path so the
// navigation can resume after authentication.
func (g *Gate) Authorize(r *http.Request) Decision {
	entry, protected := g.Policy.Match(r.URL.Path)
	if !protected {
		return Decision{Allowed: true}
	}

	c, err := g.Lookup(r)
	if err != nil || c == nil || c.User.ID == "" {
		return Decision{Location: g.LoginPath + "?" + callbackParam + "=" + r.URL.Path}
	}

	/* залогинен, но не админ: повторный логин роли не добавит,
	поэтому отправляем на главную, а не на /login */
	if entry.Level == LevelAdmin && !c.IsAdmin() {
		return Decision{Location: g.HomePath}
	}

	return Decision{Allowed: true, Claims: c}
}

// ClaimsLoader attaches claims to the context when a valid session accompanies
// the request, enforcing nothing. Handlers behind it make their own call, e.g.
// creating an auction needs claims but its path is not gate-protected.
func (g *Gate) ClaimsLoader() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims); !ok {
				if c, err := g.Lookup(r); err == nil && c != nil && c.User.ID != "" {
					r = r.WithContext(context.WithValue(r.Context(), claims.TokenContextKey, c))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (g *Gate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := g.Authorize(r)
			if !decision.Allowed {
				http.Redirect(w, r, decision.Location, http.StatusTemporaryRedirect)
				return
			}
			if decision.Claims != nil {
				ctx := context.WithValue(r.Context(), claims.TokenContextKey, decision.Claims)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
