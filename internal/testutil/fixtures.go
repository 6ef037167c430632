package testutil

import (
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/google/uuid"
)

// Deal options
type DealOption func(*domain.Deal)

func WithDealType(t domain.DealType) DealOption {
	return func(d *domain.Deal) {
		d.DealType = t
	}
}

func WithStage(s domain.Stage) DealOption {
	return func(d *domain.Deal) {
		d.Stage = s
	}
}

func WithValue(mm float64) DealOption {
	return func(d *domain.Deal) {
		d.Value = mm
	}
}

func WithSector(sector string) DealOption {
	return func(d *domain.Deal) {
		d.Sector = sector
	}
}

// NewTestDeal builds a persistable deal. Progress is derived from the
// stage after options run, the same way the service does it.
func NewTestDeal(name string, opts ...DealOption) *domain.Deal {
	now := time.Now().UTC()
	d := &domain.Deal{
		ID:       uuid.New().String(),
		Name:     name,
		Client:   name + " Client",
		Sector:   "Technology",
		Value:    100,
		Lead:     "Test Lead",
		DealType: domain.TypeMergersAcq,
		Stage:    domain.StageOrigination,
		Status:   domain.DealActive,

		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if p, err := domain.StageProgress(d.Stage); err == nil {
		d.Progress = p
	}
	return d
}

// User options
type UserOption func(*domain.User)

func WithEmail(email string) UserOption {
	return func(u *domain.User) {
		u.Email = email
	}
}

func WithRole(role string) UserOption {
	return func(u *domain.User) {
		u.Role = role
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     name + "@example.com",
		Role:      "Analyst",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithDealID(dealID string) TaskOption {
	return func(t *domain.Task) {
		t.DealID = dealID
	}
}

func NewTestTask(userID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Status:    domain.TaskTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
