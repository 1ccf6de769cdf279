package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(_ context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	s := c.session.Session()
	if !s.Authenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'notekeeper login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if s.User != nil {
		c.io.Printf("Email:   %s\n", s.User.Email)
		c.io.Printf("User ID: %d\n", s.User.ID)
	}

	// Срок действия только отображается: сессия не завершается по нему
	claims, err := c.session.Claims()
	if err != nil {
		c.io.Printf("\nWarning: failed to decode token: %v\n", err)
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}

	expiresAt := claims.ExpiresAt.Time
	remaining := expiresAt.Sub(c.clock.Now())

	c.io.Printf("Token expires: %s\n", expiresAt.UTC().Format(time.RFC3339))
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}
