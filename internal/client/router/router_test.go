package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/session"
)

func TestDecide_Table(t *testing.T) {
	gatedMember := Policy{AllowedStatuses: []string{models.StatusMember}}

	cases := []struct {
		name     string
		snap     session.Snapshot
		policy   Policy
		render   bool
		redirect View
	}{
		{
			name:   "unauthenticated wizard with pending registration renders",
			snap:   session.Snapshot{HasPendingRegistration: true},
			policy: Policy{AllowUnauthenticated: true},
			render: true,
		},
		{
			name:     "unauthenticated wizard without pending registration goes to login",
			snap:     session.Snapshot{},
			policy:   Policy{AllowUnauthenticated: true},
			redirect: ViewLogin,
		},
		{
			name:     "unauthenticated gated view goes to login",
			snap:     session.Snapshot{},
			policy:   gatedMember,
			redirect: ViewLogin,
		},
		{
			name:   "admin bypasses status gating",
			snap:   session.Snapshot{Authenticated: true, Role: models.RoleAdmin, Status: models.StatusPending},
			policy: gatedMember,
			render: true,
		},
		{
			name:   "admin bypasses admin-only guard",
			snap:   session.Snapshot{Authenticated: true, Role: models.RoleAdmin},
			policy: Policy{RequireAdmin: true},
			render: true,
		},
		{
			name:     "non-admin on admin-only view goes home",
			snap:     session.Snapshot{Authenticated: true, Role: models.RoleUser, Status: models.StatusMember},
			policy:   Policy{RequireAdmin: true},
			redirect: ViewHome,
		},
		{
			name:     "pending user on members-only view goes to the application",
			snap:     session.Snapshot{Authenticated: true, Role: models.RoleUser, Status: models.StatusPending},
			policy:   gatedMember,
			redirect: ViewApply,
		},
		{
			name:     "approved user on members-only view goes to payment",
			snap:     session.Snapshot{Authenticated: true, Role: models.RoleUser, Status: models.StatusApproved},
			policy:   gatedMember,
			redirect: ViewPay,
		},
		{
			name:     "rejected user on gated view goes home",
			snap:     session.Snapshot{Authenticated: true, Role: models.RoleUser, Status: models.StatusRejected},
			policy:   gatedMember,
			redirect: ViewHome,
		},
		{
			name:     "unknown status on gated view goes home",
			snap:     session.Snapshot{Authenticated: true, Role: models.RoleUser, Status: "frozen"},
			policy:   gatedMember,
			redirect: ViewHome,
		},
		{
			name:   "allowed status renders",
			snap:   session.Snapshot{Authenticated: true, Role: models.RoleUser, Status: models.StatusMember},
			policy: gatedMember,
			render: true,
		},
		{
			name:   "empty status set admits any authenticated user",
			snap:   session.Snapshot{Authenticated: true, Role: models.RoleUser, Status: models.StatusPending},
			policy: Policy{},
			render: true,
		},
		{
			name:   "public view renders unauthenticated",
			snap:   session.Snapshot{},
			policy: Policy{Public: true},
			render: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.snap, tc.policy)
			require.Equal(t, tc.render, d.Render)
			require.Equal(t, tc.redirect, d.RedirectTo)
		})
	}
}

func TestDecide_UnauthenticatedBeatsAdminOnly(t *testing.T) {
	// The login redirect is evaluated before the admin-only guard.
	d := Decide(session.Snapshot{}, Policy{RequireAdmin: true})
	require.Equal(t, ViewLogin, d.RedirectTo)
}

func TestLookup(t *testing.T) {
	require.True(t, Lookup(ViewHome).Public)

	apply := Lookup(ViewApply)
	require.True(t, apply.AllowUnauthenticated)
	require.Equal(t, []string{models.StatusPending}, apply.AllowedStatuses)

	require.Equal(t, []string{models.StatusApproved}, Lookup(ViewPay).AllowedStatuses)
	require.True(t, Lookup(ViewAdmin).RequireAdmin)

	// Unknown views fall back to the most restrictive non-admin policy.
	unknown := Lookup(View("/nope"))
	require.Equal(t, []string{models.StatusMember}, unknown.AllowedStatuses)
}
