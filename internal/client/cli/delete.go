package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := parseNoteID(args, "delete")
	if err != nil {
		return err
	}
	if err := c.requireSession(); err != nil {
		return err
	}

	c.io.Println("=== Delete Note ===")
	c.io.Println()

	skipConfirm := slices.Contains(args[1:], "-y") || slices.Contains(args[1:], "--yes")
	if !skipConfirm {
		confirm, err := c.io.ReadInput(fmt.Sprintf("Are you sure you want to delete note %d? (yes/no): ", id))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}

		confirm = strings.ToLower(confirm)
		if confirm != "yes" && confirm != "y" {
			c.io.Println()
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.notes.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Note deleted successfully!")
	c.io.Printf("Notes left: %d\n", len(c.notes.Notes()))

	return nil
}
