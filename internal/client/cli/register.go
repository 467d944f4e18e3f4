package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// registerView captures the registration form. No account is created yet:
// the form is stored as a pending registration and the user is sent into the
// application wizard.
func (a *App) registerView(ctx context.Context) {
	fmt.Println("Registration — step 1 of 2")

	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	phone, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return
	}
	dob, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD, optional)", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return
	}

	if err := a.session.Register(ctx, fullName, phone, email, password, dob); err != nil {
		fmt.Println("Registration failed:", err)
		return
	}

	fmt.Println("Details saved. Complete the membership application to create your account ('apply').")
}

// applyView runs step 2 of the wizard: the membership application. For a
// user mid-registration it finalizes account creation as well; for an
// already-registered pending user it just submits the application.
func (a *App) applyView(ctx context.Context) {
	fmt.Println("Membership application — step 2 of 2")

	if err := a.printVillages(ctx); err != nil {
		fmt.Println("Could not load villages:", err)
	}

	app, err := a.promptApplication()
	if err != nil {
		return
	}

	if a.session.User() != nil {
		err = a.session.ApplyForMembership(ctx, app)
	} else {
		err = a.session.RegisterAndApply(ctx, app)
	}
	if err != nil {
		fmt.Println("Application failed:", err)
		fmt.Println("Your details are kept; run 'apply' again to retry.")
		return
	}

	fmt.Println("Application submitted. An administrator will review it.")
}

func (a *App) promptApplication() (*models.MembershipApplication, error) {
	villageRaw, err := getSimpleText(a.reader, "Village id", os.Stdout)
	if err != nil {
		return nil, err
	}
	villageID, err := strconv.Atoi(villageRaw)
	if err != nil {
		fmt.Println("Village id must be a number.")
		return nil, err
	}
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return nil, err
	}
	profession, err := getSimpleText(a.reader, "Profession", os.Stdout)
	if err != nil {
		return nil, err
	}
	dob, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD, optional)", os.Stdout)
	if err != nil {
		return nil, err
	}

	return &models.MembershipApplication{
		VillageID:   villageID,
		Address:     address,
		Profession:  profession,
		DateOfBirth: dob,
	}, nil
}
