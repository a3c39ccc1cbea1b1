package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/yukikurage/assignment-tracker/internal/errors"
	"github.com/yukikurage/assignment-tracker/internal/services"
)

// UserHandler serves the read-only user directory.
type UserHandler struct {
	service *services.UserService
	log     *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// Register mounts the user routes on rg
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
	}
}

// ListUsers returns every user, so clients can pick authors and assignees
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list users", zap.Error(err))
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by ID, 404 if it does not exist
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		h.log.Error("failed to get user", zap.Error(err), zap.Uint64("user_id", id))
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}
