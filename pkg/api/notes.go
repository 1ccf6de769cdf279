package api

// CreateNoteRequest представляет запрос на создание заметки (POST /api/notes)
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
