package cli

import (
	"strings"
	"text/template"
	"unicode/utf8"
)

// previewLen — длина превью содержимого заметки в списке
const previewLen = 50

var templateFuncs = template.FuncMap{
	"preview": preview,
}

// preview обрезает текст до previewLen символов и склеивает строки
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:previewLen]) + "..."
}

const noteTemplate = `
=== Note Details ===

Title:   {{.Title}}
ID:      {{.ID}}

Content:
---
{{.Content}}
---
`

const notesListTemplate = `
=== Notes ===

{{- if eq (len .) 0 }}
No notes found.

Use 'notekeeper add' to add your first note.

{{ else }}
Found {{len .}} note(s):

{{- range . }}
- {{ .Title }}
   ID:      {{ .ID }}
   {{- if .Content }}
   Preview: {{ preview .Content }}
   {{- end }}

{{- end }}
Use 'notekeeper get <id>' to view full content.
{{- end }}
`

const usageTemplate = `
Notekeeper Client

Usage:
  notekeeper [OPTIONS] COMMAND

Options:
  -version              Show version information
  -server URL           Server URL (default: https://dist.nd.ru, env NOTES_SERVER_URL)
  -storage KIND         Local storage backend: bolt or sqlite (env NOTES_STORAGE)
  -db PATH              Path to local database (env NOTES_DB_PATH)
  -log-level LEVEL      debug, info, warn or error (env LOG_LEVEL)
  -log-format FORMAT    text or json (env LOG_FORMAT)

Commands:
  register              Register new user and log in
  login                 Login to server
  logout                Logout and delete local session
  status                Show authentication status
  whoami                Refresh and show user profile from server
  list                  List notes
  get <id>              Show full note
  add [title]           Add new note
  delete <id> [-y]      Delete note

Examples:
  notekeeper register
  notekeeper add "Shopping list"
  notekeeper delete 42 -y
  notekeeper -server http://localhost:8080 login
`
