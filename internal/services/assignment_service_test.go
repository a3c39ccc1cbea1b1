package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/assignment-tracker/internal/models"
	"gorm.io/gorm"
)

type fakeAssignmentRepo struct {
	assignments map[uint64]*models.Assignment
	nextID      uint64
	createErr   error
	findErr     error
	updated     map[uint64]models.AssignmentStatus
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		assignments: map[uint64]*models.Assignment{},
		updated:     map[uint64]models.AssignmentStatus{},
	}
}

func (r *fakeAssignmentRepo) List(ctx context.Context) ([]models.Assignment, error) {
	out := make([]models.Assignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAssignmentRepo) Create(ctx context.Context, a *models.Assignment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	a.ID = r.nextID
	stored := *a
	r.assignments[a.ID] = &stored
	return nil
}

func (r *fakeAssignmentRepo) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Assignment, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *a
	return &found, nil
}

func (r *fakeAssignmentRepo) UpdateStatus(ctx context.Context, id uint64, status models.AssignmentStatus) error {
	r.updated[id] = status
	r.assignments[id].Status = status
	return nil
}

type fakeMessageRepo struct {
	messages []models.AssignmentMessage
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *models.AssignmentMessage) error {
	m.ID = uint64(len(r.messages) + 1)
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeMessageRepo) ListByAssignment(ctx context.Context, assignmentID uint64) ([]models.AssignmentMessage, error) {
	out := []models.AssignmentMessage{}
	for _, m := range r.messages {
		if m.AssignmentID == assignmentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func newTestService() (*AssignmentService, *fakeAssignmentRepo, *fakeMessageRepo, time.Time) {
	assignments := newFakeAssignmentRepo()
	messages := &fakeMessageRepo{}
	svc := NewAssignmentService(assignments, messages)

	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	return svc, assignments, messages, fixed
}

func TestCreateAssignment_DefaultsAndClock(t *testing.T) {
	svc, repo, _, fixed := newTestService()

	created, err := svc.CreateAssignment(context.Background(), CreateAssignmentInput{
		Title:       "Prepare slides",
		Description: "for monday",
		AuthorID:    1,
		AssigneeIDs: []uint64{2, 2, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, models.AssignmentStatusAssigned, created.Status)
	assert.Equal(t, fixed, created.CreatedAt)
	require.Len(t, repo.assignments[created.ID].Assignees, 2)
	assert.Equal(t, uint64(2), repo.assignments[created.ID].Assignees[0].ID)
	assert.Equal(t, uint64(1), repo.assignments[created.ID].Assignees[1].ID)
}

func TestCreateAssignment_KeepsExplicitStatus(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.CreateAssignment(context.Background(), CreateAssignmentInput{Title: "x", Status: "in review", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatus("in review"), created.Status)
}

func TestCreateAssignment_StorageError(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.createErr = errors.New("FOREIGN KEY constraint failed")

	_, err := svc.CreateAssignment(context.Background(), CreateAssignmentInput{Title: "x", AuthorID: 99})
	assert.ErrorIs(t, err, repo.createErr)
}

func TestChangeStatus(t *testing.T) {
	svc, repo, _, _ := newTestService()
	created, err := svc.CreateAssignment(context.Background(), CreateAssignmentInput{Title: "x", AuthorID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeStatus(context.Background(), created.ID, "done"))
	assert.Equal(t, models.AssignmentStatus("done"), repo.updated[created.ID])
}

func TestChangeStatus_NotFound(t *testing.T) {
	svc, repo, _, _ := newTestService()

	err := svc.ChangeStatus(context.Background(), 404, "done")
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
	assert.Empty(t, repo.updated)
}

func TestChangeStatus_LookupFailure(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.findErr = errors.New("database is locked")

	err := svc.ChangeStatus(context.Background(), 1, "done")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAssignmentNotFound)
}

func TestAddMessage_BindsAssignmentAndClock(t *testing.T) {
	svc, _, messages, fixed := newTestService()

	msg, err := svc.AddMessage(context.Background(), AddMessageInput{AssignmentID: 5, AuthorID: 2, Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, uint64(5), msg.AssignmentID)
	assert.Equal(t, fixed, msg.CreatedAt)
	assert.Equal(t, uint64(1), msg.ID)
	require.Len(t, messages.messages, 1)
}

func TestListMessages_Isolation(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddMessage(ctx, AddMessageInput{AssignmentID: 1, Message: "a"})
	require.NoError(t, err)
	_, err = svc.AddMessage(ctx, AddMessageInput{AssignmentID: 2, Message: "b"})
	require.NoError(t, err)

	got, err := svc.ListMessages(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Message)
}

func TestUniqueUint64(t *testing.T) {
	assert.Equal(t, []uint64{3, 1, 2}, uniqueUint64([]uint64{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueUint64(nil))
}
