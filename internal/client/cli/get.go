package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	id, err := parseNoteID(args, "get")
	if err != nil {
		return err
	}
	if err := c.requireSession(); err != nil {
		return err
	}

	// Отдельного эндпоинта для одной заметки нет: ищем в полном списке
	notes, err := c.notes.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	for _, note := range notes {
		if note.ID == id {
			c.render(noteTemplate, note)
			return nil
		}
	}

	return fmt.Errorf("note not found with ID: %d", id)
}

// parseNoteID разбирает первый аргумент команды как ID заметки
func parseNoteID(args []string, command string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing note ID. Usage: notekeeper %s <id>", command)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note ID %q: must be a number", args[0])
	}

	return id, nil
}
