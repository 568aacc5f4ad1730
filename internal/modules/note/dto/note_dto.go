package dto

type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

type UpdateNoteRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Color      *string `json:"color"`
	IsPinned   *bool   `json:"isPinned"`
	IsArchived *bool   `json:"isArchived"`
}

type NoteFilter struct {
	// Filter is "pinned", "archived" or empty for active notes.
	Filter string `form:"filter"`
}
