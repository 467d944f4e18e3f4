package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// Token is the backend's token response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Me returns the identity behind the installed bearer token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a token. The identifier may be an email,
// a phone number, or a sabhasad id.
func (c *Client) Login(ctx context.Context, identifier, password string, rememberMe bool) (*Token, error) {
	form := url.Values{}
	form.Set("username", identifier)
	form.Set("password", password)
	form.Set("remember_me", strconv.FormatBool(rememberMe))

	var token Token
	if err := c.doForm(ctx, "/auth/token", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// RequestOTP asks the backend to deliver a one-time passcode to the user
// identified by email or phone number.
func (c *Client) RequestOTP(ctx context.Context, identifier string) error {
	body := map[string]string{"identifier": identifier}
	return c.doJSON(ctx, http.MethodPost, "/auth/request-otp", body, nil)
}

// VerifyOTP exchanges a one-time passcode for a token.
func (c *Client) VerifyOTP(ctx context.Context, identifier, otp string, rememberMe bool) (*Token, error) {
	body := map[string]any{"identifier": identifier, "otp": otp, "remember_me": rememberMe}
	var token Token
	if err := c.doJSON(ctx, http.MethodPost, "/auth/verify-otp", body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// AdminRequestOTP starts the administrator OTP login flow.
func (c *Client) AdminRequestOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/admin/request-otp", body, nil)
}

// AdminVerifyOTP completes the administrator OTP login flow.
func (c *Client) AdminVerifyOTP(ctx context.Context, email, otp string) (*Token, error) {
	body := map[string]string{"email": email, "otp": otp}
	var token Token
	if err := c.doJSON(ctx, http.MethodPost, "/auth/admin/verify-otp", body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Duplicates is the result of the pre-registration duplicate check.
type Duplicates struct {
	EmailExists bool `json:"email_exists"`
	PhoneExists bool `json:"phone_exists"`
}

// CheckDuplicates reports whether the email or phone number already belongs
// to a registered account.
func (c *Client) CheckDuplicates(ctx context.Context, email, phoneNumber string) (*Duplicates, error) {
	body := map[string]string{"email": email, "phone_number": phoneNumber}
	var dup Duplicates
	if err := c.doJSON(ctx, http.MethodPost, "/auth/check-duplicates", body, &dup); err != nil {
		return nil, err
	}
	return &dup, nil
}

// RegisterRequest is the payload of the account-creation endpoint.
type RegisterRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
	VillageID   *int   `json:"village_id,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// Register creates a durable account on the backend.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPasswordRequestOTP starts the password reset flow.
func (c *Client) ForgotPasswordRequestOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password/request-otp", body, nil)
}

// ForgotPasswordReset sets a new password given a valid reset passcode.
func (c *Client) ForgotPasswordReset(ctx context.Context, email, otp, newPassword string) error {
	body := map[string]string{"email": email, "otp": otp, "new_password": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password/reset", body, nil)
}
