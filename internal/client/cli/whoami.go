package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Println()

	user, err := c.session.FetchUserData(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	c.io.Printf("Email:   %s\n", user.Email)
	c.io.Printf("User ID: %d\n", user.ID)

	return nil
}
