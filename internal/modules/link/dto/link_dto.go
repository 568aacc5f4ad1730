package dto

type CreateLinkRequest struct {
	Title       string `json:"title" binding:"required"`
	URL         string `json:"url" binding:"required,url"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type LinkFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}
