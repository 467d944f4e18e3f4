package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/router"
)

func (a *App) prompt() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.DisplayName, user.Status)
}

func (a *App) root(ctx context.Context) {
	fmt.Println("Welcome to the Village Samaj client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("samaj %s> ", a.prompt())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "home":
			a.open(ctx, router.ViewHome, nil)
		case "login":
			a.open(ctx, router.ViewLogin, nil)
		case "otp":
			a.otpLoginView(ctx)
		case "admin-login":
			a.open(ctx, router.ViewAdminLogin, nil)
		case "register":
			a.open(ctx, router.ViewRegister, nil)
		case "apply":
			a.open(ctx, router.ViewApply, nil)
		case "forgot":
			a.open(ctx, router.ViewForgotPassword, nil)
		case "villages":
			a.villagesView(ctx)
		case "members":
			a.open(ctx, router.ViewMembers, nil)
		case "member":
			a.open(ctx, router.ViewMemberProfile, args)
		case "family":
			a.familyView(ctx)
		case "profile":
			a.open(ctx, router.ViewProfile, nil)
		case "dashboard":
			a.open(ctx, router.ViewDashboard, nil)
		case "donate":
			a.open(ctx, router.ViewDonate, nil)
		case "pay":
			a.open(ctx, router.ViewPay, nil)
		case "history":
			a.historyView(ctx)
		case "admin":
			a.open(ctx, router.ViewAdmin, nil)
		case "whoami":
			a.whoami(ctx)
		case "logout":
			a.session.Logout(ctx)
			fmt.Println("Signed out.")
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.session.User() != nil {
		fmt.Println("Available commands: home, villages, members, member <id>, family, profile, dashboard, donate, pay, history, apply, admin, whoami, logout, exit")
	} else {
		fmt.Println("Available commands: home, login, otp, admin-login, register, apply, forgot, villages, donate, exit")
	}
}
