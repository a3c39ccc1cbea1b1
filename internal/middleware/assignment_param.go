package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/assignment-tracker/internal/errors"
)

const ContextKeyAssignmentID = "assignment_id"

// RequireAssignmentID parses the :id path parameter and stores it in the context.
// Existence of the assignment is left to the handler.
func RequireAssignmentID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Ids must fit a signed 64-bit column.
		id, err := strconv.ParseUint(c.Param("id"), 10, 63)
		if err != nil {
			apierrors.BadRequest(c, "Invalid assignment ID")
			return
		}

		c.Set(ContextKeyAssignmentID, id)
		c.Next()
	}
}

// GetAssignmentID retrieves the assignment ID parsed by RequireAssignmentID
func GetAssignmentID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(ContextKeyAssignmentID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
