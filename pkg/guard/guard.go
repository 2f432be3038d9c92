// Package guard is the presentation-tier counterpart of pkg/gate: it runs
// after session state has loaded and enforces required/admin-only policy by
// navigating away instead of rejecting a request.
package guard

import (
	"fmt"

	"auctionhouse/pkg/user"
)

type SessionStatus int

const (
	StatusLoading SessionStatus = iota
	StatusAuthenticated
	StatusUnauthenticated
)

type Session struct {
	User user.User
}

// Policy flags are independent: Required passes any authenticated session,
// AdminOnly additionally demands the admin role.
type Policy struct {
	Required  bool
	AdminOnly bool
}

type State struct {
	IsLoading       bool
	IsAuthenticated bool
	IsAdmin         bool
	User            *user.User
}

type Navigator interface {
	Navigate(target string)
}

type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

type Guard struct {
	Nav       Navigator
	LoginPath string
	HomePath  string

	// last denied transition, so a re-render with the same resolved state
	// does not navigate again and cause a redirect loop
	lastDenied string
}

func New(nav Navigator) *Guard {
	return &Guard{
		Nav:       nav,
		LoginPath: "/login",
		HomePath:  "/",
	}
}

// Evaluate is called on every session-state change. While the session is
// still loading it decides nothing. Once resolved: Required without a session
// navigates to login, AdminOnly without the admin role navigates home (a
// logged-in non-admin would gain nothing from logging in again).
func (g *Guard) Evaluate(sess *Session, status SessionStatus, policy Policy) State {
	if status == StatusLoading {
		g.lastDenied = ""
		return State{IsLoading: true}
	}

	authenticated := status == StatusAuthenticated && sess != nil
	admin := authenticated && sess.User.Role == user.RoleAdmin

	state := State{
		IsAuthenticated: authenticated,
		IsAdmin:         admin,
	}
	if authenticated {
		state.User = &sess.User
	}

	var target string
	switch {
	case policy.Required && !authenticated:
		target = g.LoginPath
	case policy.AdminOnly && !admin:
		target = g.HomePath
	}

	if target == "" {
		g.lastDenied = ""
		return state
	}

	denied := fmt.Sprintf("%s|%d|%t", target, status, admin)
	if denied != g.lastDenied {
		g.lastDenied = denied
		g.Nav.Navigate(target)
	}

	return state
}
