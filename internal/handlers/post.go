package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/postboard/internal/handlers/dto"
	"github.com/thereayou/postboard/internal/services"
	"gorm.io/gorm"
)

type PostHandler struct {
	db services.DatabaseService
}

func NewPostHandler(db services.DatabaseService) *PostHandler {
	return &PostHandler{db: db}
}

// ListByUser возвращает пользователя и его посты, новые первыми
func (h *PostHandler) ListByUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := h.db.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, CodeNotFound, "User not found")
			return
		}
		abortWithError(c, CodeInternal, "failed to load user")
		return
	}

	posts, err := h.db.GetUserPosts(userID)
	if err != nil {
		abortWithError(c, CodeInternal, "failed to load posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"posts": posts,
	})
}

// CreatePost проверяет существование пользователя на каждом вызове
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, CodeBadRequest, err.Error())
		return
	}

	if _, err := h.db.GetUser(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, CodeNotFound, "User not found")
			return
		}
		abortWithError(c, CodeInternal, "failed to load user")
		return
	}

	post, err := h.db.CreatePost(req.UserID, req.Title, req.Body)
	if err != nil {
		abortWithError(c, CodeInternal, "failed to create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// DeletePost сначала проверяет наличие поста, затем удаляет.
// Окно между проверкой и удалением принимается: при одном писателе
// удаление после успешной проверки может не задеть строк только из-за
// конкурентного удаления, и это отражается как внутренняя ошибка.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	exists, err := h.db.PostExists(postID)
	if err != nil {
		abortWithError(c, CodeInternal, "failed to check post")
		return
	}
	if !exists {
		abortWithError(c, CodeNotFound, "Post not found")
		return
	}

	deleted, err := h.db.DeletePost(postID)
	if err != nil || !deleted {
		abortWithError(c, CodeInternal, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post deleted successfully",
	})
}
