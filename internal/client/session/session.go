// Package session implements the client's single source of truth for "who is
// the current user and are they authenticated". The Manager is the only
// component that mutates the stored credential; everything else observes it.
package session

import (
	"context"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/api"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// Backend is the slice of the API client the session manager depends on.
// *api.Client satisfies it; tests substitute a fake.
type Backend interface {
	SetToken(token string)
	ClearToken()

	Me(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, identifier, password string, rememberMe bool) (*api.Token, error)
	RequestOTP(ctx context.Context, identifier string) error
	VerifyOTP(ctx context.Context, identifier, otp string, rememberMe bool) (*api.Token, error)
	AdminRequestOTP(ctx context.Context, email string) error
	AdminVerifyOTP(ctx context.Context, email, otp string) (*api.Token, error)
	CheckDuplicates(ctx context.Context, email, phoneNumber string) (*api.Duplicates, error)
	Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error)
	Apply(ctx context.Context, app *models.MembershipApplication) (*models.User, error)
	ForgotPasswordRequestOTP(ctx context.Context, email string) error
	ForgotPasswordReset(ctx context.Context, email, otp, newPassword string) error
}

// Snapshot is an immutable view of the session consumed by the router and
// the view layer. It is recomputed on every state change.
type Snapshot struct {
	Authenticated          bool
	Loading                bool
	Role                   string
	Status                 string
	HasPendingRegistration bool
}
