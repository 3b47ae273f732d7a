package server

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/thereayou/postboard/internal/database"
	"github.com/thereayou/postboard/internal/handlers"
	"github.com/thereayou/postboard/internal/middleware"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Log    *logrus.Logger
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			logrus.Println(".env not found, using environment variables")
		}
	}

	log := logrus.New()

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	userH := handlers.NewUserHandler(dbConn)
	postH := handlers.NewPostHandler(dbConn)

	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery(), cors.Default())
	APIEndpoints(router, userH, postH)

	return &Server{
		Router: router,
		DB:     dbConn,
		Log:    log,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	s.Log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		s.Log.Fatalf("Server run error: %v", err)
	}
}

func (s *Server) Close() error {
	return s.DB.Close()
}
