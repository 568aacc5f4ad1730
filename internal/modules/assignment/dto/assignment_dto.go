package dto

type SubmitAssignmentRequest struct {
	Title   string `form:"title" binding:"required"`
	Student string `form:"student" binding:"required"`
	Email   string `form:"email" binding:"omitempty,email"`
	Note    string `form:"note"`
}

type AssignmentFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

type GradeRequest struct {
	Grade    *float64 `json:"grade" binding:"required"`
	Feedback string   `json:"feedback"`
	GradedBy string   `json:"gradedBy"`
}
