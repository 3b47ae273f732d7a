package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/postboard/internal/handlers/dto"
	"github.com/thereayou/postboard/internal/services"
	"github.com/thereayou/postboard/pkg/pagination"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type UserHandler struct {
	db services.DatabaseService
}

func NewUserHandler(db services.DatabaseService) *UserHandler {
	return &UserHandler{db: db}
}

// ListUsers возвращает страницу пользователей с адресами и метаданными пагинации
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q dto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, CodeBadRequest, err.Error())
		return
	}

	if q.Page == 0 {
		q.Page = defaultPage
	}
	if q.Limit == 0 {
		q.Limit = defaultLimit
	}

	users, total, err := h.db.ListUsersWithAddresses(q.Limit, pagination.Offset(q.Page, q.Limit))
	if err != nil {
		abortWithError(c, CodeInternal, "failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination.New(q.Page, q.Limit, total),
	})
}
