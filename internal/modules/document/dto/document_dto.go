package dto

import (
	"eduhub.vn/studyportal/internal/entity"
)

type UploadDocumentRequest struct {
	Title       string `form:"title" binding:"required"`
	Category    string `form:"category"`
	Description string `form:"description"`
}

type ImportFromURLRequest struct {
	URL      string `json:"url" binding:"required,url"`
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
}

type DocumentFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

type AddTagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type ShareRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CollaboratorRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PreviewResponse struct {
	*entity.Document
	Content *string `json:"content,omitempty"`
}
