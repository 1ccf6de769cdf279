package models

// Note представляет заметку. Владелец заметок — сервер,
// клиент хранит только последнюю загруженную копию.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
