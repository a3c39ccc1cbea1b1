package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/yukikurage/assignment-tracker/internal/dto"
	apierrors "github.com/yukikurage/assignment-tracker/internal/errors"
	"github.com/yukikurage/assignment-tracker/internal/metrics"
	"github.com/yukikurage/assignment-tracker/internal/middleware"
	"github.com/yukikurage/assignment-tracker/internal/models"
	"github.com/yukikurage/assignment-tracker/internal/services"
)

type AssignmentHandler struct {
	service *services.AssignmentService
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewAssignmentHandler(service *services.AssignmentService, m *metrics.Metrics, log *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		metrics: m,
		log:     log,
	}
}

// Register mounts the assignment routes on the given group.
func (h *AssignmentHandler) Register(rg *gin.RouterGroup) {
	assignments := rg.Group("/assignments")
	{
		assignments.GET("", h.ListAssignments)
		assignments.POST("", h.CreateAssignment)
		assignments.POST("/:id/status", middleware.RequireAssignmentID(), h.ChangeStatus)
		assignments.POST("/:id/messages", middleware.RequireAssignmentID(), h.AddMessage)
		assignments.GET("/:id/messages", middleware.RequireAssignmentID(), h.ListMessages)
	}
}

// ListAssignments returns every assignment with author and assignees expanded
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.service.ListAssignments(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "Failed to fetch assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment creates a new assignment
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	assignment, err := h.service.CreateAssignment(c.Request.Context(), services.CreateAssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AuthorID:    req.ResolvedAuthorID(),
		AssigneeIDs: req.ResolvedAssigneeIDs(),
	})
	if err != nil {
		h.internalError(c, err, "Failed to create assignment")
		return
	}

	h.metrics.AssignmentCreated()
	h.log.Info("assignment created",
		zap.Uint64("assignment_id", assignment.ID),
		zap.Uint64("author_id", assignment.AuthorID),
		zap.Int("assignees", len(assignment.Assignees)),
	)
	c.JSON(http.StatusOK, assignment)
}

// ChangeStatus overwrites the status of an assignment.
// The body is a bare JSON string; {"status": "..."} is accepted too.
func (h *AssignmentHandler) ChangeStatus(c *gin.Context) {
	id, _ := middleware.GetAssignmentID(c)

	status, ok := bindStatus(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ChangeStatus(c.Request.Context(), id, models.AssignmentStatus(status)); err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			h.metrics.StatusChanged(false)
			apierrors.NotFound(c, "Assignment not found")
			return
		}
		h.internalError(c, err, "Failed to update status")
		return
	}

	h.metrics.StatusChanged(true)
	c.Status(http.StatusOK)
}

// AddMessage posts a message to an assignment's thread
func (h *AssignmentHandler) AddMessage(c *gin.Context) {
	id, _ := middleware.GetAssignmentID(c)

	var req dto.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	message, err := h.service.AddMessage(c.Request.Context(), services.AddMessageInput{
		AssignmentID: id,
		AuthorID:     req.AuthorID,
		Message:      req.Message,
	})
	if err != nil {
		h.internalError(c, err, "Failed to create message")
		return
	}

	h.metrics.MessageCreated()
	c.JSON(http.StatusOK, message)
}

// ListMessages returns the messages attached to an assignment
func (h *AssignmentHandler) ListMessages(c *gin.Context) {
	id, _ := middleware.GetAssignmentID(c)

	messages, err := h.service.ListMessages(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *AssignmentHandler) internalError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	h.log.Error(message,
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	apierrors.InternalError(c, message)
}

// bindStatus reads a bare JSON string or a {"status": ...} object.
// A null status in either form is rejected.
func bindStatus(c *gin.Context) (string, bool) {
	var status *string
	if err := c.ShouldBindBodyWith(&status, binding.JSON); err == nil {
		if status == nil {
			return "", false
		}
		return *status, true
	}

	var req dto.StatusRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err == nil && req.Status != nil {
		return *req.Status, true
	}

	return "", false
}
