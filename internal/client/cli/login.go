package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/notekeeper/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if _, err := c.session.Login(ctx, email, password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	if s := c.session.Session(); s.User != nil {
		c.io.Printf("Email:   %s\n", s.User.Email)
		c.io.Printf("User ID: %d\n", s.User.ID)
	}
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
