package database

import (
	"github.com/thereayou/postboard/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		return err
	}
	return nil
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsersWithAddresses возвращает страницу пользователей с их адресами
// и общее количество строк. Сортировка по имени выполняется до среза страницы.
func (d *Database) ListUsersWithAddresses(limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := d.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := make([]models.User, 0)
	err := d.db.
		Preload("Address").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error

	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
