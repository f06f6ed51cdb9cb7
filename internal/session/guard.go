package session

import (
	"net/url"
	"strings"
)

// Routes known to the guard.
const (
	SignInRoute = "/signin"
	HomeRoute   = "/"
)

// Authenticator is the part of [Session] the guard depends on.
type Authenticator interface {
	IsAuthenticated() bool
}

// Decision is the outcome of a guard check.
type Decision struct {
	// Allowed is true when the requested route may be shown.
	Allowed bool

	// Redirect is the route to show instead; empty when Allowed.
	Redirect string

	// From is the originally requested route, carried to the sign-in screen
	// so navigation can resume there after a successful sign-in.
	From string
}

// Location renders the redirect as a route with a "from" query parameter,
// e.g. "/signin?from=%2Fcats%2Fnew".
func (d Decision) Location() string {
	if d.Allowed {
		return ""
	}
	if d.From == "" {
		return d.Redirect
	}
	return d.Redirect + "?" + url.Values{"from": {d.From}}.Encode()
}

// Guard gates protected routes on session authentication.
type Guard struct {
	auth Authenticator
}

func NewGuard(auth Authenticator) *Guard {
	return &Guard{auth: auth}
}

// Check decides whether route can be entered. Authentication is re-derived on
// every call.
func (g *Guard) Check(route string) Decision {
	if g.auth != nil && g.auth.IsAuthenticated() {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: SignInRoute, From: route}
}

// ResumeTarget returns where to go after sign-in: from when it is a usable
// in-app route, otherwise HomeRoute. Redirecting back to the sign-in screen
// itself is never allowed.
func ResumeTarget(from string) string {
	from = strings.TrimSpace(from)
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		return HomeRoute
	}
	if from == SignInRoute || strings.HasPrefix(from, SignInRoute+"?") {
		return HomeRoute
	}
	return from
}
