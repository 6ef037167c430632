package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type directoryService struct {
	users repository.UserRepo
}

func NewDirectoryService(users repository.UserRepo) DirectoryService {
	return &directoryService{users: users}
}

func (s *directoryService) CreateUser(ctx context.Context, u *domain.User) error {
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now().UTC()
	return s.users.Create(ctx, u)
}

func (s *directoryService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Resolve finds the directory user matching the given email or name,
// case-insensitive. Returns nil, nil when nothing matches.
func (s *directoryService) Resolve(ctx context.Context, email, name string) (*domain.User, error) {
	directory, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ResolveMember(directory, email, name), nil
}
