package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/notekeeper/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
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

	// Совпадение паролей проверяет сервер
	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	c.io.Println()
	c.io.Println("Registering user...")

	result, err := c.session.Register(ctx, email, password, confirmPassword)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")

	if result.Login == nil {
		c.io.Println("Please run 'notekeeper login' to start using the service.")
		return nil
	}

	s := c.session.Session()
	if s.User != nil {
		c.io.Printf("Email:   %s\n", s.User.Email)
		c.io.Printf("User ID: %d\n", s.User.ID)
	}
	c.io.Println()
	c.io.Println("You are now logged in.")

	return nil
}
