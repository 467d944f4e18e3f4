package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getDefaultedText = GetDefaultedText
var getPassword = GetPassword
var getYesNo = GetYesNo

// loginView prompts for credentials and authenticates. The identifier may be
// an email, phone number, or sabhasad id; a previously remembered identifier
// is offered as the default.
func (a *App) loginView(ctx context.Context) {
	remembered := a.session.RememberedIdentifier(ctx)
	identifier, err := getDefaultedText(a.reader, "Email / phone / sabhasad id", remembered, os.Stdout)
	if err != nil {
		return
	}

	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return
	}

	remember, err := getYesNo(a.reader, "Remember me?", os.Stdout)
	if err != nil {
		return
	}

	if err := a.session.Login(ctx, identifier, password, remember); err != nil {
		fmt.Println("Sign in failed:", err)
		return
	}
	fmt.Println("Signed in.")
}

// otpLoginView runs the two-phase passcode login for regular users.
func (a *App) otpLoginView(ctx context.Context) {
	identifier, err := getSimpleText(a.reader, "Email or phone number", os.Stdout)
	if err != nil {
		return
	}

	if err := a.session.RequestOTP(ctx, identifier); err != nil {
		fmt.Println("Could not send code:", err)
		return
	}
	fmt.Println("A one-time code was sent. It expires in a few minutes.")

	code, err := getSimpleText(a.reader, "Enter the code", os.Stdout)
	if err != nil {
		return
	}
	remember, err := getYesNo(a.reader, "Remember me?", os.Stdout)
	if err != nil {
		return
	}

	if err := a.session.VerifyOTP(ctx, identifier, code, remember); err != nil {
		fmt.Println("Sign in failed:", err)
		return
	}
	fmt.Println("Signed in.")
}

// adminLoginView runs the administrator passcode flow.
func (a *App) adminLoginView(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Admin email", os.Stdout)
	if err != nil {
		return
	}

	if err := a.session.AdminRequestOTP(ctx, email); err != nil {
		fmt.Println("Could not send code:", err)
		return
	}
	fmt.Println("A one-time code was sent to the admin address.")

	code, err := getSimpleText(a.reader, "Enter the code", os.Stdout)
	if err != nil {
		return
	}

	if err := a.session.AdminVerifyOTP(ctx, email, code); err != nil {
		fmt.Println("Sign in failed:", err)
		return
	}
	fmt.Println("Signed in as administrator.")
}

// forgotPasswordView runs the password reset flow.
func (a *App) forgotPasswordView(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Account email", os.Stdout)
	if err != nil {
		return
	}

	if err := a.session.RequestPasswordResetOTP(ctx, email); err != nil {
		fmt.Println("Could not send reset code:", err)
		return
	}
	fmt.Println("A reset code was sent. Check your inbox.")

	code, err := getSimpleText(a.reader, "Enter the code", os.Stdout)
	if err != nil {
		return
	}
	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return
	}

	if err := a.session.ResetPassword(ctx, email, code, newPassword); err != nil {
		fmt.Println("Reset failed:", err)
		return
	}
	fmt.Println("Password updated. You can sign in now.")
}

func (a *App) whoami(ctx context.Context) {
	user := a.session.User()
	if user == nil {
		fmt.Println("Not signed in.")
		return
	}
	fmt.Printf("%s <%s> role=%s status=%s\n", user.DisplayName, user.Email, user.Role, user.Status)
	if sub := session.TokenSubject(a.api.Token()); sub != "" {
		fmt.Println("Token issued to:", sub)
	}
	if exp, err := session.TokenExpiry(a.api.Token()); err == nil && !exp.IsZero() {
		fmt.Println("Session expires:", exp.Local().Format("2006-01-02 15:04"))
	}
}
