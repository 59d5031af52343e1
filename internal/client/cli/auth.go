package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/greenpath/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for name, email and password and creates the account,
// signing the new user in.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	p, err := a.authService.SignUp(ctx, services.SignUpForm{
		DisplayName: name,
		Email:       email,
		Password:    string(password),
	})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Welcome to GreenPath, %s!\n", p.DisplayName)
	a.remindSetup(ctx)
	return nil
}

// Login prompts for credentials and signs the user in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	p, err := a.authService.Login(ctx, services.LoginForm{Email: email, Password: string(password)})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", p.DisplayName)
	a.remindSetup(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the active profile without the password.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "Name:     %s\n", u.DisplayName)
	fmt.Fprintf(a.out, "Email:    %s\n", u.Email)
	if u.SetupComplete() {
		fmt.Fprintf(a.out, "Location: %s, %s, %s\n", u.City, u.State, u.Country)
	} else {
		fmt.Fprintln(a.out, "Location: not set")
	}
	if u.LivingType != "" {
		fmt.Fprintf(a.out, "Living:   %s\n", u.LivingType.Label())
	}
	return nil
}
