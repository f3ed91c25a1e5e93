package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jmills-dev/streaks/internal/session"
)

type RegisterCmd struct {
	FirstName string `help:"First name."`
	LastName  string `help:"Last name."`
	Email     string `help:"Email address."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	firstName := c.FirstName
	lastName := c.LastName
	email := c.Email
	var password, confirm string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&firstName),
			huh.NewInput().Title("Last name").Value(&lastName),
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("registration form error: %w", err)
	}

	profile, err := ctx.Sessions.Register(firstName, lastName, email, password, confirm)
	if err != nil {
		return err
	}

	fmt.Printf("Registered account for %s %s (%s).\n", profile.FirstName, profile.LastName, profile.Email)
	fmt.Println("Log in with 'streaks login'.")
	return nil
}

type LoginCmd struct {
	Email string `help:"Email address."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	email := c.Email
	var password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("login form error: %w", err)
	}

	sess, err := ctx.Sessions.Login(email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s.\n", sess.Email)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if _, err := ctx.Sessions.Current(); errors.Is(err, session.ErrNotLoggedIn) {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := ctx.Sessions.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	sess, err := ctx.Sessions.Current()
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			fmt.Println("Not logged in.")
			return nil
		}
		return err
	}

	profile, err := ctx.Sessions.Profile()
	if err != nil {
		fmt.Printf("Logged in as %s.\n", sess.Email)
		return nil
	}

	fmt.Printf("Logged in as %s %s (%s).\n", profile.FirstName, profile.LastName, profile.Email)
	return nil
}
