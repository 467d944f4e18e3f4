package router

import "github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"

// routes is the product's navigation table. Public views carry no gating;
// the rest declare the statuses (or the admin role) they require.
var routes = map[View]Policy{
	ViewHome:           {Public: true},
	ViewLogin:          {Public: true},
	ViewRegister:       {Public: true},
	ViewForgotPassword: {Public: true},
	ViewAdminLogin:     {Public: true},
	ViewDonate:         {Public: true},

	// Pending users fill the application; the wizard also runs before an
	// account exists.
	ViewApply: {
		AllowedStatuses:      []string{models.StatusPending},
		AllowUnauthenticated: true,
	},

	// Approved users pay the membership fee.
	ViewPay: {AllowedStatuses: []string{models.StatusApproved}},

	ViewMembers:       {AllowedStatuses: []string{models.StatusApproved, models.StatusMember}},
	ViewMemberProfile: {AllowedStatuses: []string{models.StatusApproved, models.StatusMember}},
	ViewProfile:       {AllowedStatuses: []string{models.StatusApproved, models.StatusMember}},

	ViewDashboard: {AllowedStatuses: []string{models.StatusMember}},

	ViewAdmin: {RequireAdmin: true},
}

// Lookup returns the policy for a view. Unknown views are treated as
// members-only, the most restrictive non-admin policy.
func Lookup(v View) Policy {
	if p, ok := routes[v]; ok {
		return p
	}
	return Policy{AllowedStatuses: []string{models.StatusMember}}
}
