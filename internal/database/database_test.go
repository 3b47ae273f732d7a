package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/postboard/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	d := NewDatabase(db)
	require.NoError(t, d.Migrate())
	t.Cleanup(func() { d.Close() })

	return d
}

func seedUser(t *testing.T, d *Database, name, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Username: username,
		Email:    username + "@example.com",
		Phone:    "555-0100",
	}
	require.NoError(t, d.SaveUser(user))
	return user
}
