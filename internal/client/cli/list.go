package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	notes, err := c.notes.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	c.render(notesListTemplate, notes)

	return nil
}
