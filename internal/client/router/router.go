// Package router decides, per navigation target, whether to render the
// requested view or redirect to a status-appropriate one. Decide is a pure
// function of (session snapshot, route policy); it holds no state and must be
// re-evaluated on every navigation and on every session change.
package router

import (
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/session"
)

// View identifies a navigation target by its path.
type View string

const (
	ViewHome           View = "/"
	ViewLogin          View = "/login"
	ViewRegister       View = "/register"
	ViewForgotPassword View = "/forgot-password"
	ViewAdminLogin     View = "/admin-login"
	ViewDonate         View = "/donate"
	ViewApply          View = "/apply"
	ViewPay            View = "/pay"
	ViewMembers        View = "/members"
	ViewMemberProfile  View = "/members/:id"
	ViewProfile        View = "/profile"
	ViewDashboard      View = "/dashboard"
	ViewAdmin          View = "/admin"
)

// Policy annotates a view with its access requirements.
type Policy struct {
	// Public views skip gating entirely.
	Public bool
	// AllowedStatuses is the set of account statuses permitted to render the
	// view. Empty means any authenticated status.
	AllowedStatuses []string
	// AllowUnauthenticated admits an unauthenticated user who has a pending
	// registration (the wizard runs before an account exists).
	AllowUnauthenticated bool
	// RequireAdmin restricts the view to administrators.
	RequireAdmin bool
}

// Decision is the outcome of a navigation request: render the target, or
// redirect elsewhere.
type Decision struct {
	Render     bool
	RedirectTo View
}

func render() Decision         { return Decision{Render: true} }
func redirect(v View) Decision { return Decision{RedirectTo: v} }

// Decide evaluates the gating contract in strict order:
//
//  1. unauthenticated + AllowUnauthenticated + pending registration → render
//  2. unauthenticated → redirect to login
//  3. admin role → render (admins bypass status gating)
//  4. RequireAdmin without the role → redirect home
//  5. status outside AllowedStatuses → redirect by current status:
//     pending → application wizard, approved → membership payment,
//     anything else → home
//  6. otherwise → render
func Decide(s session.Snapshot, p Policy) Decision {
	if p.Public {
		return render()
	}

	if !s.Authenticated {
		if p.AllowUnauthenticated && s.HasPendingRegistration {
			return render()
		}
		return redirect(ViewLogin)
	}

	if s.Role == models.RoleAdmin {
		return render()
	}

	if p.RequireAdmin {
		return redirect(ViewHome)
	}

	if len(p.AllowedStatuses) > 0 && !contains(p.AllowedStatuses, s.Status) {
		switch s.Status {
		case models.StatusPending:
			return redirect(ViewApply)
		case models.StatusApproved:
			return redirect(ViewPay)
		default:
			return redirect(ViewHome)
		}
	}

	return render()
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
