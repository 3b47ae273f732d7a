package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/postboard/internal/handlers"
)

func APIEndpoints(r *gin.Engine, userH *handlers.UserHandler, postH *handlers.PostHandler) {
	api := r.Group("/api/v1")
	{
		api.GET("/users", userH.ListUsers)
		api.GET("/users/:id/posts", postH.ListByUser)
		api.POST("/posts", postH.CreatePost)
		api.DELETE("/posts/:id", postH.DeletePost)
	}
}
