package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/api"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/storage"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/common"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/logging"
)

// OTPRequestTimeout bounds the OTP-request and password-reset-request calls.
// On expiry the operation fails with common.ErrRequestTimedOut.
const OTPRequestTimeout = 15 * time.Second

// otpResendInterval is the minimum spacing between outgoing OTP requests,
// enforced client-side so a stuck button cannot hammer the backend.
const otpResendInterval = 30 * time.Second

// ErrOTPThrottled is returned when an OTP request is issued before the
// resend interval has elapsed.
var ErrOTPThrottled = errors.New("please wait a moment before requesting another code")

// Manager owns {user, token, pendingRegistration, loading} and exposes the
// authentication operations. It changes state and notifies subscribers; it
// never navigates — reacting to an unauthenticated session is the caller's
// concern.
type Manager struct {
	backend Backend
	store   storage.Store
	log     logging.Logger
	otp     *rate.Limiter

	mu          sync.Mutex
	user        *models.User
	pending     *models.PendingRegistration
	loading     bool
	subscribers []func(Snapshot)
}

// NewManager constructs a Manager. The session is considered loading until
// the first CheckSession resolves.
func NewManager(backend Backend, store storage.Store, log logging.Logger) *Manager {
	return &Manager{
		backend: backend,
		store:   store,
		log:     log,
		otp:     rate.NewLimiter(rate.Every(otpResendInterval), 1),
		loading: true,
	}
}

// Subscribe registers fn to be called with a fresh snapshot after every
// session change, including teardown.
func (m *Manager) Subscribe(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// User returns the current user, nil when unauthenticated.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Loading reports whether the startup identity check is still in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Snapshot returns the current session view for routing decisions.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	s := Snapshot{
		Authenticated:          m.user != nil,
		Loading:                m.loading,
		HasPendingRegistration: m.pending != nil,
	}
	if m.user != nil {
		s.Role = m.user.Role
		s.Status = m.user.Status
	}
	return s
}

func (m *Manager) notify() {
	m.mu.Lock()
	snap := m.snapshotLocked()
	subs := make([]func(Snapshot), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// CheckSession validates the stored token against the identity endpoint and
// installs the resulting user. Any failure tears the session down instead of
// surfacing an error; the startup check must never raise. It always concludes
// by marking loading complete.
func (m *Manager) CheckSession(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
		m.notify()
	}()

	// A pending registration stored by a previous run must be visible to the
	// router before the first navigation.
	if _, err := m.loadPending(ctx); err != nil {
		m.log.Warn(ctx, "failed to load pending registration", "error", err)
	}

	token, err := m.store.Get(ctx, common.TokenKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored token", "error", err)
	}
	if len(token) == 0 {
		m.teardown(ctx)
		return
	}

	// An expired token cannot pass the identity check; skip the round trip.
	if exp, err := TokenExpiry(string(token)); err == nil && !exp.IsZero() && time.Now().After(exp) {
		m.log.Info(ctx, "stored token expired, clearing session")
		m.teardown(ctx)
		return
	}

	m.backend.SetToken(string(token))
	user, err := m.backend.Me(ctx)
	if err != nil {
		m.log.Info(ctx, "identity check failed, clearing session", "error", err)
		m.teardown(ctx)
		return
	}
	user.Decorate()

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
}

// RefreshUser re-runs the identity check. Consumers call it to pull fresh
// identity and status after a side-effecting operation elsewhere.
func (m *Manager) RefreshUser(ctx context.Context) {
	m.CheckSession(ctx)
}

// Login exchanges credentials for a token, persists it, and refreshes the
// session. rememberMe controls whether the identifier is persisted for
// prefill on the next start.
func (m *Manager) Login(ctx context.Context, identifier, password string, rememberMe bool) error {
	token, err := m.backend.Login(ctx, identifier, password, rememberMe)
	if err != nil {
		return err
	}
	if err := m.installSession(ctx, token.AccessToken, identifier, rememberMe); err != nil {
		return err
	}
	m.CheckSession(ctx)
	return nil
}

// RequestOTP asks for a login passcode, bounded by OTPRequestTimeout.
func (m *Manager) RequestOTP(ctx context.Context, identifier string) error {
	if !m.otp.Allow() {
		return ErrOTPThrottled
	}
	ctx, cancel := context.WithTimeout(ctx, OTPRequestTimeout)
	defer cancel()
	return m.backend.RequestOTP(ctx, identifier)
}

// VerifyOTP completes passcode login: persists the token and refreshes the
// session.
func (m *Manager) VerifyOTP(ctx context.Context, identifier, otp string, rememberMe bool) error {
	token, err := m.backend.VerifyOTP(ctx, identifier, otp, rememberMe)
	if err != nil {
		return err
	}
	if err := m.installSession(ctx, token.AccessToken, identifier, rememberMe); err != nil {
		return err
	}
	m.CheckSession(ctx)
	return nil
}

// AdminRequestOTP starts the administrator passcode flow, bounded by
// OTPRequestTimeout.
func (m *Manager) AdminRequestOTP(ctx context.Context, email string) error {
	if !m.otp.Allow() {
		return ErrOTPThrottled
	}
	ctx, cancel := context.WithTimeout(ctx, OTPRequestTimeout)
	defer cancel()
	return m.backend.AdminRequestOTP(ctx, email)
}

// AdminVerifyOTP completes administrator passcode login.
func (m *Manager) AdminVerifyOTP(ctx context.Context, email, otp string) error {
	token, err := m.backend.AdminVerifyOTP(ctx, email, otp)
	if err != nil {
		return err
	}
	if err := m.installToken(ctx, token.AccessToken); err != nil {
		return err
	}
	m.CheckSession(ctx)
	return nil
}

// Register runs the duplicate check and, when the email and phone number are
// free, captures the form as a pending registration. No backend account is
// created here: the account only comes into existence once the membership
// application wizard completes, so no unapplied orphan accounts are left
// behind.
//
// A duplicate-check transport failure blocks registration rather than being
// swallowed: proceeding blind would let the later register step fail deep
// inside the wizard.
func (m *Manager) Register(ctx context.Context, fullName, phoneNumber, email, password, dateOfBirth string) error {
	dup, err := m.backend.CheckDuplicates(ctx, email, phoneNumber)
	if err != nil {
		return fmt.Errorf("could not verify registration details: %w", err)
	}
	if dup.EmailExists {
		return errors.New("Email already registered. Please sign in.")
	}
	if dup.PhoneExists {
		return errors.New("Phone number already registered. Please sign in.")
	}

	pending := &models.PendingRegistration{
		FullName:    fullName,
		Email:       email,
		Password:    password,
		PhoneNumber: phoneNumber,
		DateOfBirth: dateOfBirth,
		AttemptID:   uuid.NewString(),
		Stage:       models.StageCaptured,
	}
	if err := m.savePending(ctx, pending); err != nil {
		return err
	}
	m.notify()
	return nil
}

// RegisterAndApply finalizes the wizard: create the account, log in with the
// same credentials, submit the membership application. The three steps run
// strictly in sequence; each step's success is persisted as the pending
// registration's stage, so a retry after a partial failure resumes at the
// first incomplete step instead of re-registering an existing account. Only
// full success clears the pending registration.
func (m *Manager) RegisterAndApply(ctx context.Context, app *models.MembershipApplication) error {
	pending, err := m.loadPending(ctx)
	if err != nil {
		return err
	}
	if pending == nil {
		return common.ErrNoPendingRegistration
	}

	if pending.Stage == models.StageCaptured {
		req := &api.RegisterRequest{
			FullName:    pending.FullName,
			Email:       pending.Email,
			Password:    pending.Password,
			PhoneNumber: pending.PhoneNumber,
			VillageID:   &app.VillageID,
			DateOfBirth: pending.DateOfBirth,
		}
		if _, err := m.backend.Register(ctx, req); err != nil {
			return err
		}
		pending.Stage = models.StageRegistered
		if err := m.savePending(ctx, pending); err != nil {
			return err
		}
	}

	if pending.Stage == models.StageRegistered {
		token, err := m.backend.Login(ctx, pending.Email, pending.Password, false)
		if err != nil {
			return err
		}
		if err := m.installToken(ctx, token.AccessToken); err != nil {
			return err
		}
		pending.Stage = models.StageAuthenticated
		if err := m.savePending(ctx, pending); err != nil {
			return err
		}
	}

	if app.DateOfBirth == "" {
		app.DateOfBirth = pending.DateOfBirth
	}
	if _, err := m.backend.Apply(ctx, app); err != nil {
		return err
	}

	if err := m.clearPending(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear pending registration", "error", err)
	}
	m.CheckSession(ctx)
	return nil
}

// ApplyForMembership submits the application for an already-registered user
// and refreshes the session. Any pending registration is cleared on success:
// a resumed wizard can land here after a restart once the account exists, and
// the captured form (password included) must not outlive the signed-in user.
func (m *Manager) ApplyForMembership(ctx context.Context, app *models.MembershipApplication) error {
	if _, err := m.backend.Apply(ctx, app); err != nil {
		return err
	}
	if err := m.clearPending(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear pending registration", "error", err)
	}
	m.CheckSession(ctx)
	return nil
}

// RequestPasswordResetOTP starts the forgot-password flow, bounded by
// OTPRequestTimeout. Independent of the authenticated session.
func (m *Manager) RequestPasswordResetOTP(ctx context.Context, email string) error {
	if !m.otp.Allow() {
		return ErrOTPThrottled
	}
	ctx, cancel := context.WithTimeout(ctx, OTPRequestTimeout)
	defer cancel()
	return m.backend.ForgotPasswordRequestOTP(ctx, email)
}

// ResetPassword completes the forgot-password flow.
func (m *Manager) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return m.backend.ForgotPasswordReset(ctx, email, otp, newPassword)
}

// Logout clears the user and the stored credential and notifies subscribers.
// It never fails: storage problems are logged, not raised, so it is safe to
// call from any state including mid-teardown.
func (m *Manager) Logout(ctx context.Context) {
	m.teardown(ctx)
	m.notify()
}

func (m *Manager) teardown(ctx context.Context) {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	m.backend.ClearToken()
	if err := m.store.Delete(ctx, common.TokenKey); err != nil {
		m.log.Warn(ctx, "failed to clear stored token", "error", err)
	}
}

// PendingRegistration returns the in-progress registration, consulting
// memory first and the durable store second.
func (m *Manager) PendingRegistration(ctx context.Context) *models.PendingRegistration {
	pending, err := m.loadPending(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load pending registration", "error", err)
		return nil
	}
	return pending
}

// RememberedIdentifier returns the identifier persisted by a login with
// rememberMe=true, or "" when none is stored.
func (m *Manager) RememberedIdentifier(ctx context.Context) string {
	v, err := m.store.Get(ctx, common.RememberedIdentifierKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read remembered identifier", "error", err)
		return ""
	}
	return string(v)
}

func (m *Manager) installToken(ctx context.Context, token string) error {
	m.backend.SetToken(token)
	if err := m.store.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// installSession persists the token together with the remembered identifier.
// With remember set, both keys are written in one transaction so a crash
// cannot leave a token without its prefill, or the other way round.
func (m *Manager) installSession(ctx context.Context, token, identifier string, remember bool) error {
	m.backend.SetToken(token)
	if remember {
		err := m.store.SetAll(ctx, map[string][]byte{
			common.TokenKey:                []byte(token),
			common.RememberedIdentifierKey: []byte(identifier),
		})
		if err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
		return nil
	}
	if err := m.store.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := m.store.Delete(ctx, common.RememberedIdentifierKey); err != nil {
		m.log.Warn(ctx, "failed to update remembered identifier", "error", err)
	}
	return nil
}

func (m *Manager) savePending(ctx context.Context, pending *models.PendingRegistration) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to encode pending registration: %w", err)
	}
	if err := m.store.Set(ctx, common.PendingRegistrationKey, data); err != nil {
		return err
	}
	m.mu.Lock()
	m.pending = pending
	m.mu.Unlock()
	return nil
}

func (m *Manager) loadPending(ctx context.Context) (*models.PendingRegistration, error) {
	m.mu.Lock()
	pending := m.pending
	m.mu.Unlock()
	if pending != nil {
		return pending, nil
	}

	data, err := m.store.Get(ctx, common.PendingRegistrationKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var p models.PendingRegistration
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode pending registration: %w", err)
	}

	m.mu.Lock()
	m.pending = &p
	m.mu.Unlock()
	return &p, nil
}

func (m *Manager) clearPending(ctx context.Context) error {
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
	return m.store.Delete(ctx, common.PendingRegistrationKey)
}
