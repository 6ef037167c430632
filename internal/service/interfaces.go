package service

import (
	"context"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
)

// Every mutation below that touches a deal re-reads the row inside a
// transaction, applies the change together with its audit entry, and
// persists both in one write. The actor parameter is the display name
// recorded on the audit entry; empty falls back to "System".

type DealService interface {
	Create(ctx context.Context, d *domain.Deal, actor string) error
	GetByID(ctx context.Context, id string) (*domain.Deal, error)
	List(ctx context.Context, filter repository.DealFilter) ([]*domain.Deal, error)
	UpdateDetails(ctx context.Context, d *domain.Deal) error
	ChangeStage(ctx context.Context, id string, stage domain.Stage, actor string) (*domain.Deal, error)
	UpdateNotes(ctx context.Context, id, notes, actor string) (*domain.Deal, error)
	Delete(ctx context.Context, id string) error
}

type TeamService interface {
	AddMember(ctx context.Context, dealID string, m domain.PodTeamMember, actor string) (*domain.Deal, error)
	RemoveMember(ctx context.Context, dealID string, index int, actor string) (*domain.Deal, error)
}

type InvestorService interface {
	Tag(ctx context.Context, dealID string, inv domain.TaggedInvestor, actor string) (*domain.Deal, error)
	UpdateStatus(ctx context.Context, dealID, investorID string, status domain.InvestorStatus, actor string) (*domain.Deal, error)
	Remove(ctx context.Context, dealID, investorID string, actor string) (*domain.Deal, error)
}

type OpportunityService interface {
	ListPending(ctx context.Context) ([]*domain.Deal, error)
	Promote(ctx context.Context, id string, division domain.Division, actor string) (*domain.Deal, error)
	Reject(ctx context.Context, id string) error
}

// FileStore is the attachment payload store (local disk in this build).
type FileStore interface {
	Save(src string) (domain.Attachment, error)
	Remove(a domain.Attachment) error
}

type AttachmentService interface {
	Attach(ctx context.Context, dealID, path, actor string) (*domain.Deal, error)
	Remove(ctx context.Context, dealID, attachmentID, actor string) (*domain.Deal, error)
}

type DirectoryService interface {
	CreateUser(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
	Resolve(ctx context.Context, email, name string) (*domain.User, error)
}

// BoardRow is one line of the team assignment board.
type BoardRow struct {
	User         *domain.User
	OpenTasks    int
	Availability domain.Availability
}

type AssignmentService interface {
	CreateTask(ctx context.Context, t *domain.Task) error
	CompleteTask(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Board(ctx context.Context) ([]BoardRow, error)
}

// StageSlice aggregates the deals sitting in one stage.
type StageSlice struct {
	Stage      domain.Stage
	Count      int
	TotalValue float64
}

// PipelineSummary is the dashboard headline view across all deals.
type PipelineSummary struct {
	Stages               []StageSlice
	TotalDeals           int
	TotalValue           float64
	PendingOpportunities int
}

// DealActivity is one audit entry with its parent deal context, used for
// the cross-deal activity feed.
type DealActivity struct {
	DealID   string
	DealName string
	Entry    domain.AuditEntry
}

type PipelineService interface {
	Summary(ctx context.Context) (*PipelineSummary, error)
	RecentActivity(ctx context.Context, limit int) ([]DealActivity, error)
}

// ImportSummary reports what one import file produced.
type ImportSummary struct {
	Users int
	Deals int
}

type ImportService interface {
	ImportFile(ctx context.Context, path, actor string) (*ImportSummary, error)
}
