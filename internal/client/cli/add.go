package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/notekeeper/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	c.io.Println("=== Add Note ===")
	c.io.Println()

	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		var err error
		title, err = c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}
	if err := validation.ValidateNoteTitle(title); err != nil {
		return err
	}

	content, err := c.readContent()
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	note, err := c.notes.Add(ctx, title, content)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Note added successfully!")
	c.io.Printf("ID:    %d\n", note.ID)
	c.io.Printf("Title: %s\n", note.Title)
	c.io.Printf("Total notes: %d\n", len(c.notes.Notes()))

	return nil
}

// readContent читает строки содержимого до пустой строки
func (c *Cli) readContent() (string, error) {
	c.io.Println("Content (finish with an empty line):")

	var lines []string
	for {
		line, err := c.io.ReadInput("")
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
