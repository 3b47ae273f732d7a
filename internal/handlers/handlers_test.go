package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/postboard/cmd/server"
	"github.com/thereayou/postboard/internal/database"
	"github.com/thereayou/postboard/internal/handlers"
	"github.com/thereayou/postboard/internal/models"
	"github.com/thereayou/postboard/pkg/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type listUsersResponse struct {
	Users      []models.User         `json:"users"`
	Pagination pagination.Pagination `json:"pagination"`
}

type listPostsResponse struct {
	User  models.User   `json:"user"`
	Posts []models.Post `json:"posts"`
}

type createPostResponse struct {
	Post models.Post `json:"post"`
}

type deletePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func setupAPI(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	d := database.NewDatabase(db)
	require.NoError(t, d.Migrate())
	t.Cleanup(func() { d.Close() })

	r := gin.New()
	server.APIEndpoints(r, handlers.NewUserHandler(d), handlers.NewPostHandler(d))
	return r, d
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func seedUser(t *testing.T, d *database.Database, id, name string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       id,
		Name:     name,
		Username: id,
		Email:    id + "@example.com",
		Phone:    "555-0100",
	}
	require.NoError(t, d.SaveUser(user))
	return user
}
