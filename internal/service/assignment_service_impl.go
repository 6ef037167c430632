package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type assignmentService struct {
	tasks repository.TaskRepo
	users repository.UserRepo
}

func NewAssignmentService(tasks repository.TaskRepo, users repository.UserRepo) AssignmentService {
	return &assignmentService{tasks: tasks, users: users}
}

func (s *assignmentService) CreateTask(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if _, err := s.users.GetByID(ctx, t.UserID); err != nil {
		return fmt.Errorf("assignee: %w", err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *assignmentService) CompleteTask(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Status = domain.TaskDone
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *assignmentService) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// Board returns one row per directory user with their open-task count and
// availability bucket, in directory order.
func (s *assignmentService) Board(ctx context.Context) ([]BoardRow, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]BoardRow, 0, len(users))
	for _, u := range users {
		open, err := s.tasks.CountOpenByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, BoardRow{
			User:         u,
			OpenTasks:    open,
			Availability: domain.ClassifyAvailability(open),
		})
	}
	return rows, nil
}
