package session

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/api"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/storage"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/common"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupStore(t *testing.T) (*storage.SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return storage.NewSQLiteStore(db), db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fake backend ----

// fakeBackend implements Backend for unit tests of the Manager.
type fakeBackend struct {
	token string

	MeRet *models.User
	MeErr error

	LoginRet *api.Token
	LoginErr error

	RequestOTPErr error
	VerifyOTPRet  *api.Token
	VerifyOTPErr  error

	AdminRequestOTPErr error
	AdminVerifyOTPRet  *api.Token
	AdminVerifyOTPErr  error

	DuplicatesRet *api.Duplicates
	DuplicatesErr error

	RegisterRet *models.User
	RegisterErr error

	ApplyRet *models.User
	ApplyErr error

	ForgotRequestErr error
	ForgotResetErr   error

	RegisterCalls int
	LoginCalls    int
	ApplyCalls    int

	LastLoginIdentifier string
	LastLoginRemember   bool
	LastRegister        *api.RegisterRequest
	LastApply           *models.MembershipApplication
}

func (f *fakeBackend) SetToken(token string) { f.token = token }
func (f *fakeBackend) ClearToken()           { f.token = "" }

func (f *fakeBackend) Me(ctx context.Context) (*models.User, error) {
	if f.MeErr != nil {
		return nil, f.MeErr
	}
	u := *f.MeRet
	return &u, nil
}

func (f *fakeBackend) Login(ctx context.Context, identifier, password string, rememberMe bool) (*api.Token, error) {
	f.LoginCalls++
	f.LastLoginIdentifier = identifier
	f.LastLoginRemember = rememberMe
	return f.LoginRet, f.LoginErr
}

func (f *fakeBackend) RequestOTP(ctx context.Context, identifier string) error {
	return f.RequestOTPErr
}

func (f *fakeBackend) VerifyOTP(ctx context.Context, identifier, otp string, rememberMe bool) (*api.Token, error) {
	return f.VerifyOTPRet, f.VerifyOTPErr
}

func (f *fakeBackend) AdminRequestOTP(ctx context.Context, email string) error {
	return f.AdminRequestOTPErr
}

func (f *fakeBackend) AdminVerifyOTP(ctx context.Context, email, otp string) (*api.Token, error) {
	return f.AdminVerifyOTPRet, f.AdminVerifyOTPErr
}

func (f *fakeBackend) CheckDuplicates(ctx context.Context, email, phoneNumber string) (*api.Duplicates, error) {
	return f.DuplicatesRet, f.DuplicatesErr
}

func (f *fakeBackend) Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error) {
	f.RegisterCalls++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeBackend) Apply(ctx context.Context, app *models.MembershipApplication) (*models.User, error) {
	f.ApplyCalls++
	f.LastApply = app
	return f.ApplyRet, f.ApplyErr
}

func (f *fakeBackend) ForgotPasswordRequestOTP(ctx context.Context, email string) error {
	return f.ForgotRequestErr
}

func (f *fakeBackend) ForgotPasswordReset(ctx context.Context, email, otp, newPassword string) error {
	return f.ForgotResetErr
}

func approvedUser() *models.User {
	return &models.User{
		ID:       7,
		Email:    "asha@example.com",
		FullName: "Asha Patel",
		Role:     models.RoleUser,
		Status:   models.StatusApproved,
	}
}

func newManager(t *testing.T) (*Manager, *fakeBackend, *storage.SQLiteStore) {
	t.Helper()
	store, _ := setupStore(t)
	backend := &fakeBackend{}
	return NewManager(backend, store, testLogger()), backend, store
}

// ---- TESTS ----

func TestLoginThenLogout_LeavesNoSession(t *testing.T) {
	ctx := context.Background()
	m, backend, store := newManager(t)

	backend.LoginRet = &api.Token{AccessToken: "tok-1"}
	backend.MeRet = approvedUser()

	require.NoError(t, m.Login(ctx, "asha@example.com", "secret", false))
	require.NotNil(t, m.User())
	require.Equal(t, "tok-1", backend.token)

	m.Logout(ctx)

	require.Nil(t, m.User())
	require.Empty(t, backend.token)

	stored, err := store.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestLogin_SetsDisplayDerivations(t *testing.T) {
	ctx := context.Background()
	m, backend, _ := newManager(t)

	backend.LoginRet = &api.Token{AccessToken: "tok-1"}
	backend.MeRet = approvedUser()

	require.NoError(t, m.Login(ctx, "asha@example.com", "secret", false))

	user := m.User()
	require.Equal(t, "Asha Patel", user.DisplayName)
	require.Contains(t, user.Avatar, "ui-avatars.com")
	require.Contains(t, user.Avatar, "Asha+Patel")
}

func TestCheckSession_InvalidTokenClearsSession(t *testing.T) {
	ctx := context.Background()
	m, backend, store := newManager(t)

	require.NoError(t, store.Set(ctx, common.TokenKey, []byte("stale-token")))
	backend.MeErr = errors.New("401 unauthorized")

	m.CheckSession(ctx)

	require.Nil(t, m.User())
	require.False(t, m.Loading())

	stored, err := store.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestCheckSession_NoTokenFinishesLoading(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	require.True(t, m.Loading())
	m.CheckSession(ctx)
	require.False(t, m.Loading())
	require.Nil(t, m.User())
}

func TestRegister_DoesNotCreateAccount(t *testing.T) {
	ctx := context.Background()
	m, backend, store := newManager(t)

	backend.DuplicatesRet = &api.Duplicates{}

	require.NoError(t, m.Register(ctx, "Asha Patel", "9876543210", "asha@example.com", "secret", "1990-01-05"))

	require.Zero(t, backend.RegisterCalls)

	pending := m.PendingRegistration(ctx)
	require.NotNil(t, pending)
	require.Equal(t, "asha@example.com", pending.Email)
	require.Equal(t, models.StageCaptured, pending.Stage)
	require.NotEmpty(t, pending.AttemptID)

	stored, err := store.Get(ctx, common.PendingRegistrationKey)
	require.NoError(t, err)
	require.NotEmpty(t, stored)
}

func TestRegister_DuplicateEmailFails(t *testing.T) {
	ctx := context.Background()
	m, backend, _ := newManager(t)

	backend.DuplicatesRet = &api.Duplicates{EmailExists: true}

	err := m.Register(ctx, "Asha Patel", "9876543210", "asha@example.com", "secret", "")
	require.ErrorContains(t, err, "Email already registered")
	require.Nil(t, m.PendingRegistration(ctx))
}

func TestRegister_DuplicateCheckFailureBlocks(t *testing.T) {
	ctx := context.Background()
	m, backend, _ := newManager(t)

	backend.DuplicatesErr = errors.New("boom")

	err := m.Register(ctx, "Asha Patel", "9876543210", "asha@example.com", "secret", "")
	require.Error(t, err)
	require.Nil(t, m.PendingRegistration(ctx))
}

func TestRegisterAndApply_NoPendingFails(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	err := m.RegisterAndApply(ctx, &models.MembershipApplication{VillageID: 1})
	require.ErrorIs(t, err, common.ErrNoPendingRegistration)
}

func TestRegisterAndApply_FullSuccessClearsPending(t *testing.T) {
	ctx := context.Background()
	m, backend, store := newManager(t)

	backend.DuplicatesRet = &api.Duplicates{}
	backend.RegisterRet = &models.User{ID: 8}
	backend.LoginRet = &api.Token{AccessToken: "tok-2"}
	backend.ApplyRet = &models.User{ID: 8, Status: models.StatusPending}
	backend.MeRet = &models.User{ID: 8, Email: "asha@example.com", FullName: "Asha Patel", Role: models.RoleUser, Status: models.StatusPending}

	require.NoError(t, m.Register(ctx, "Asha Patel", "9876543210", "asha@example.com", "secret", "1990-01-05"))

	app := &models.MembershipApplication{VillageID: 3, Address: "12 Lake Road", Profession: "Teacher"}
	require.NoError(t, m.RegisterAndApply(ctx, app))

	require.Equal(t, 1, backend.RegisterCalls)
	require.Equal(t, 1, backend.ApplyCalls)
	require.Equal(t, 3, *backend.LastRegister.VillageID)
	require.Equal(t, "1990-01-05", backend.LastApply.DateOfBirth)

	require.Nil(t, m.PendingRegistration(ctx))
	stored, err := store.Get(ctx, common.PendingRegistrationKey)
	require.NoError(t, err)
	require.Nil(t, stored)

	require.NotNil(t, m.User())
}

func TestRegisterAndApply_RetryAfterApplyFailureSkipsRegister(t *testing.T) {
	ctx := context.Background()
	m, backend, _ := newManager(t)

	backend.DuplicatesRet = &api.Duplicates{}
	backend.RegisterRet = &models.User{ID: 8}
	backend.LoginRet = &api.Token{AccessToken: "tok-2"}
	backend.ApplyErr = errors.New("village not found")
	backend.MeRet = &models.User{ID: 8, Status: models.StatusPending, Role: models.RoleUser}

	require.NoError(t, m.Register(ctx, "Asha Patel", "9876543210", "asha@example.com", "secret", ""))

	app := &models.MembershipApplication{VillageID: 99}
	require.Error(t, m.RegisterAndApply(ctx, app))

	// First attempt registered and logged in, then failed at apply.
	require.Equal(t, 1, backend.RegisterCalls)
	pending := m.PendingRegistration(ctx)
	require.NotNil(t, pending)
	require.Equal(t, models.StageAuthenticated, pending.Stage)

	// Retry must not re-register the existing account.
	backend.ApplyErr = nil
	backend.ApplyRet = &models.User{ID: 8, Status: models.StatusPending}
	app.VillageID = 3
	require.NoError(t, m.RegisterAndApply(ctx, app))

	require.Equal(t, 1, backend.RegisterCalls)
	require.Equal(t, 2, backend.ApplyCalls)
	require.Nil(t, m.PendingRegistration(ctx))
}

func TestApplyForMembership_AfterRestartClearsPending(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	// First run: the wizard registers and signs in, then fails at apply.
	backend := &fakeBackend{
		DuplicatesRet: &api.Duplicates{},
		RegisterRet:   &models.User{ID: 8},
		LoginRet:      &api.Token{AccessToken: "tok-2"},
		ApplyErr:      errors.New("village not found"),
	}
	m := NewManager(backend, store, testLogger())
	require.NoError(t, m.Register(ctx, "Asha Patel", "9876543210", "asha@example.com", "secret", "1990-01-05"))
	require.Error(t, m.RegisterAndApply(ctx, &models.MembershipApplication{VillageID: 99}))

	// Second run over the same store: the stored token signs the user in, so
	// the application goes through ApplyForMembership.
	backend2 := &fakeBackend{
		MeRet:    &models.User{ID: 8, Email: "asha@example.com", Role: models.RoleUser, Status: models.StatusPending},
		ApplyRet: &models.User{ID: 8, Status: models.StatusPending},
	}
	m2 := NewManager(backend2, store, testLogger())
	m2.CheckSession(ctx)
	require.NotNil(t, m2.User())
	require.True(t, m2.Snapshot().HasPendingRegistration)

	require.NoError(t, m2.ApplyForMembership(ctx, &models.MembershipApplication{VillageID: 3}))

	// The captured form, password included, must not outlive the account.
	require.Nil(t, m2.PendingRegistration(ctx))
	require.False(t, m2.Snapshot().HasPendingRegistration)
	stored, err := store.Get(ctx, common.PendingRegistrationKey)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestRememberIdentifier_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m, backend, _ := newManager(t)

	backend.LoginRet = &api.Token{AccessToken: "tok-1"}
	backend.MeRet = approvedUser()

	require.NoError(t, m.Login(ctx, "asha@example.com", "secret", true))
	require.Equal(t, "asha@example.com", m.RememberedIdentifier(ctx))

	require.NoError(t, m.Login(ctx, "asha@example.com", "secret", false))
	require.Empty(t, m.RememberedIdentifier(ctx))
}

func TestRequestOTP_Throttled(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	require.NoError(t, m.RequestOTP(ctx, "asha@example.com"))
	require.ErrorIs(t, m.RequestOTP(ctx, "asha@example.com"), ErrOTPThrottled)
}

func TestVerifyOTP_InstallsSession(t *testing.T) {
	ctx := context.Background()
	m, backend, store := newManager(t)

	backend.VerifyOTPRet = &api.Token{AccessToken: "tok-3"}
	backend.MeRet = approvedUser()

	require.NoError(t, m.VerifyOTP(ctx, "asha@example.com", "123456", false))

	require.NotNil(t, m.User())
	stored, err := store.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	require.Equal(t, "tok-3", string(stored))
}

func TestSubscribe_NotifiedOnLogout(t *testing.T) {
	ctx := context.Background()
	m, backend, _ := newManager(t)

	backend.LoginRet = &api.Token{AccessToken: "tok-1"}
	backend.MeRet = approvedUser()
	require.NoError(t, m.Login(ctx, "asha@example.com", "secret", false))

	var last Snapshot
	m.Subscribe(func(s Snapshot) { last = s })

	m.Logout(ctx)
	require.False(t, last.Authenticated)
}
