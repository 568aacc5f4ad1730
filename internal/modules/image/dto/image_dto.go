package dto

type UploadImageRequest struct {
	Title       string `form:"title" binding:"required"`
	Category    string `form:"category"`
	Description string `form:"description"`
	Width       *int   `form:"width"`
	Height      *int   `form:"height"`
}

type ImageFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}
