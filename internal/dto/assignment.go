package dto

import "github.com/yukikurage/assignment-tracker/internal/models"

// UserRef references an existing user by ID. Any other user fields sent by
// the client are ignored.
type UserRef struct {
	ID uint64 `json:"id"`
}

// CreateAssignmentRequest is the body of POST /assignments.
// A client-supplied created_at is not part of the contract and is dropped.
type CreateAssignmentRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Status      models.AssignmentStatus `json:"status"`
	AuthorID    uint64                  `json:"author_id"`
	Author      *UserRef                `json:"author"`
	AssigneeIDs []uint64                `json:"assignee_ids"`
	Assignees   []UserRef               `json:"assignees"`
}

// ResolvedAuthorID returns author_id, falling back to author.id.
func (r CreateAssignmentRequest) ResolvedAuthorID() uint64 {
	if r.AuthorID == 0 && r.Author != nil {
		return r.Author.ID
	}
	return r.AuthorID
}

// ResolvedAssigneeIDs merges assignee_ids with the ids of assignees.
func (r CreateAssignmentRequest) ResolvedAssigneeIDs() []uint64 {
	ids := make([]uint64, 0, len(r.AssigneeIDs)+len(r.Assignees))
	ids = append(ids, r.AssigneeIDs...)
	for _, a := range r.Assignees {
		ids = append(ids, a.ID)
	}
	return ids
}

// StatusRequest is the object form accepted by POST /assignments/:id/status
// in addition to a bare JSON string.
type StatusRequest struct {
	Status *string `json:"status"`
}

// AddMessageRequest is the body of POST /assignments/:id/messages.
// assignment_id and created_at are always set by the server.
type AddMessageRequest struct {
	Message  string `json:"message"`
	AuthorID uint64 `json:"author_id"`
}
