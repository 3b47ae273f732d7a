package database

import (
	"github.com/thereayou/postboard/internal/models"
)

func (d *Database) SaveAddress(address *models.Address) error {
	return d.db.Create(address).Error
}
