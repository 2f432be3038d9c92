package gate

import (
	"errors"
	"net/http"
	"os"
	"strings"

	jwt "github.com/dgrijalva/jwt-go"

	"auctionhouse/pkg/claims"
	"auctionhouse/pkg/session"
)

const tokenCookie = "token"

// NewSessionLookup builds the production Lookup: a signed JWT from the
// Authorization header or the token cookie, verified against JWT_SECRET,
// then checked for liveness in the session store.
func NewSessionLookup(sessions session.Repository) Lookup {
	return func(r *http.Request) (*claims.Claims, error) {
		token := tokenFromRequest(r)
		if token == "" {
			return nil, nil
		}

		hashSecretGetter := func(token *jwt.Token) (interface{}, error) {
			method, ok := token.Method.(*jwt.SigningMethodHMAC)
			if !ok || method.Alg() != "HS256" {
				return nil, errors.New("bad sign method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		}

		_claims_ := &claims.Claims{}

		_token_, err := jwt.ParseWithClaims(token, _claims_, hashSecretGetter)
		if err != nil {
			return nil, err
		}
		if !_token_.Valid || _claims_.User.Username == "" {
			return nil, errors.New("invalid token")
		}

		ok, err := sessions.IsValid(_claims_.User.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}

		return _claims_, nil
	}
}

func tokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := r.Cookie(tokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
