package dto

type CreateTodoRequest struct {
	Text     string  `json:"text" binding:"required"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"dueDate"`
}

type UpdateTodoRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}
