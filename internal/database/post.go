package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/postboard/internal/models"
)

// GetUserPosts получает посты пользователя, новые первыми
func (d *Database) GetUserPosts(userID string) ([]models.Post, error) {
	posts := make([]models.Post, 0)

	err := d.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (d *Database) PostExists(id string) (bool, error) {
	var count int64
	err := d.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatePost генерирует идентификатор и время создания на сервере.
// Существование пользователя здесь не проверяется — ссылку на
// несуществующего пользователя отклонит внешний ключ.
func (d *Database) CreatePost(userID, title, body string) (*models.Post, error) {
	post := &models.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	if err := d.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost сообщает, была ли строка действительно удалена
func (d *Database) DeletePost(id string) (bool, error) {
	result := d.db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
