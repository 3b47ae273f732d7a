package dto

type CreatePostRequest struct {
	UserID string `json:"user_id" binding:"required,min=1"`
	Title  string `json:"title" binding:"required,min=1"`
	Body   string `json:"body" binding:"required,min=1"`
}
