package database

import (
	"os"

	"github.com/thereayou/postboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultSQLitePath = "data.db"

// Connect открывает Postgres, если задан DATABASE_URL,
// иначе локальный SQLite-файл (SQLITE_PATH, по умолчанию data.db)
func (d *Database) Connect() error {
	var dialector gorm.Dialector

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = defaultSQLitePath
		}
		// _fk=1 включает внешние ключи для каждого соединения пула
		dialector = sqlite.Open(path + "?_fk=1")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	d.db = db

	return d.Migrate()
}

func (d *Database) Migrate() error {
	return d.db.AutoMigrate(&models.User{}, &models.Address{}, &models.Post{})
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
