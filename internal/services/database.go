package services

import "github.com/thereayou/postboard/internal/models"

type DatabaseService interface {
	GetUser(id string) (*models.User, error)
	ListUsersWithAddresses(limit, offset int) ([]models.User, int64, error)
	GetUserPosts(userID string) ([]models.Post, error)
	PostExists(id string) (bool, error)
	CreatePost(userID, title, body string) (*models.Post, error)
	DeletePost(id string) (bool, error)
}
