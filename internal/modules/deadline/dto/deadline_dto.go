package dto

type CreateDeadlineRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	DeadlineDate string `json:"deadlineDate" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=deadline meeting exam event"`
	Priority     string `json:"priority"`
	AssignedTo   string `json:"assignedTo"`
}

type DeadlineFilter struct {
	Type   string `form:"type"`
	Status string `form:"status"`
}

type UpdateDeadlineStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=upcoming overdue completed"`
}
