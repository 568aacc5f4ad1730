package dto

type CreateCommentRequest struct {
	EntityType string `json:"entityType" binding:"required"`
	EntityID   uint   `json:"entityId" binding:"required"`
	UserName   string `json:"userName" binding:"required"`
	Content    string `json:"content" binding:"required"`
}
