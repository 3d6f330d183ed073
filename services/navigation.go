package services

import (
	"net/url"
	"strings"

	"github.com/fadhlanhapp/trekshare-backend/models"
)

const (
	HomePath      = "/dashboard"
	LoginPath     = "/login"
	redirectParam = "?next="
)

// guestOnlyPaths are pages a signed-in user should not see
var guestOnlyPaths = []string{"/login", "/signup", "/forgot-password"}

// memberPaths need a signed-in user
var memberPaths = []string{"/dashboard", "/treks/new", "/treks/edit", "/bookings", "/profile"}

// ResolveNavigation decides where a session requesting path should end up
func ResolveNavigation(session models.Session, path string) models.NavigationDecision {
	path = cleanPath(path)

	if session.Authenticated && matchesAny(path, guestOnlyPaths) {
		return models.NavigationDecision{Redirect: true, Location: HomePath}
	}
	if !session.Authenticated && matchesAny(path, memberPaths) {
		return models.NavigationDecision{Redirect: true, Location: LoginPath + redirectParam + url.QueryEscape(path)}
	}
	return models.NavigationDecision{}
}

func cleanPath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// matchesAny reports whether path is one of prefixes or nested below one
func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
