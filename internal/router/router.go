package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/assignment-tracker/internal/handlers"
	"github.com/yukikurage/assignment-tracker/internal/metrics"
	"github.com/yukikurage/assignment-tracker/internal/middleware"
	"github.com/yukikurage/assignment-tracker/internal/repository"
	"github.com/yukikurage/assignment-tracker/internal/services"
)

// New wires repositories, services and handlers around the given database
// handle and returns the HTTP engine.
func New(db *gorm.DB, m *metrics.Metrics, log *zap.Logger) *gin.Engine {
	assignmentRepo := repository.NewAssignmentRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	userRepo := repository.NewUserRepository(db)

	assignmentHandler := handlers.NewAssignmentHandler(
		services.NewAssignmentService(assignmentRepo, messageRepo), m, log)
	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo), log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(m))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Assignment tracker is running",
		})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// Routes are served both at the root and under /api.
	for _, rg := range []*gin.RouterGroup{&r.RouterGroup, r.Group("/api")} {
		assignmentHandler.Register(rg)
		userHandler.Register(rg)
	}

	return r
}
