package services

import (
	"testing"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveNavigation(t *testing.T) {
	member := models.Session{Authenticated: true, UserID: "u1"}
	guest := models.Session{}

	cases := []struct {
		name     string
		session  models.Session
		path     string
		expected models.NavigationDecision
	}{
		{"member on login", member, "/login", models.NavigationDecision{Redirect: true, Location: "/dashboard"}},
		{"member on signup with query", member, "/signup?ref=nav", models.NavigationDecision{Redirect: true, Location: "/dashboard"}},
		{"member on dashboard", member, "/dashboard", models.NavigationDecision{}},
		{"guest on login", guest, "/login", models.NavigationDecision{}},
		{"guest on nested member page", guest, "/treks/edit/abc/", models.NavigationDecision{Redirect: true, Location: "/login?next=%2Ftreks%2Fedit%2Fabc"}},
		{"guest on member path with reserved characters", guest, "/bookings/a&b=c", models.NavigationDecision{Redirect: true, Location: "/login?next=%2Fbookings%2Fa%26b%3Dc"}},
		{"guest on public region page", guest, "/regions/khumbu", models.NavigationDecision{}},
		{"guest on lookalike path", guest, "/dashboards", models.NavigationDecision{}},
		{"empty path", guest, "", models.NavigationDecision{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveNavigation(tc.session, tc.path))
		})
	}
}
