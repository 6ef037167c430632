package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
)

// dealColumns is the canonical SELECT column list for deals.
const dealColumns = `id, name, client, sector, value_mm, lead, deal_type, stage, status,
		progress, notes, pod_team, tagged_investors, attachments, audit_trail,
		created_at, updated_at`

// SQLiteDealRepo implements DealRepo against a SQLite connection. It takes
// a db.DBTX so the same repository code serves both plain reads and
// transactional read-modify-write sequences.
type SQLiteDealRepo struct {
	conn db.DBTX
}

// NewSQLiteDealRepo creates a new SQLiteDealRepo.
func NewSQLiteDealRepo(conn db.DBTX) *SQLiteDealRepo {
	return &SQLiteDealRepo{conn: conn}
}

func (r *SQLiteDealRepo) Create(ctx context.Context, d *domain.Deal) error {
	team, investors, attachments, trail, err := encodeCollections(d)
	if err != nil {
		return err
	}
	query := `INSERT INTO deals (` + dealColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.conn.ExecContext(ctx, query,
		d.ID, d.Name, d.Client, d.Sector, d.Value, d.Lead,
		string(d.DealType), string(d.Stage), string(d.Status),
		d.Progress, d.Notes,
		team, investors, attachments, trail,
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting deal: %w", err)
	}
	return nil
}

func (r *SQLiteDealRepo) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	d, err := scanDeal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("deal not found")
	}
	return d, err
}

func (r *SQLiteDealRepo) List(ctx context.Context, filter DealFilter) ([]*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals`
	var (
		conds []string
		args  []any
	)
	if filter.DealType != "" {
		conds = append(conds, "deal_type = ?")
		args = append(args, string(filter.DealType))
	}
	if filter.Stage != "" {
		conds = append(conds, "stage = ?")
		args = append(args, string(filter.Stage))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at"

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing deals: %w", err)
	}
	defer rows.Close()

	var deals []*domain.Deal
	for rows.Next() {
		d, err := scanDeal(rows.Scan)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deals: %w", err)
	}
	return deals, nil
}

// Update writes the full row, collections included. Because the audit
// trail travels in the same statement as the field it describes, a deal
// can never be observed with the change applied but the entry missing.
func (r *SQLiteDealRepo) Update(ctx context.Context, d *domain.Deal) error {
	team, investors, attachments, trail, err := encodeCollections(d)
	if err != nil {
		return err
	}
	query := `UPDATE deals SET name = ?, client = ?, sector = ?, value_mm = ?, lead = ?,
		deal_type = ?, stage = ?, status = ?, progress = ?, notes = ?,
		pod_team = ?, tagged_investors = ?, attachments = ?, audit_trail = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		d.Name, d.Client, d.Sector, d.Value, d.Lead,
		string(d.DealType), string(d.Stage), string(d.Status),
		d.Progress, d.Notes,
		team, investors, attachments, trail,
		d.UpdatedAt.Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating deal: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("deal not found")
	}
	return nil
}

func (r *SQLiteDealRepo) Delete(ctx context.Context, id string) error {
	_, err := r.conn.ExecContext(ctx, `DELETE FROM deals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting deal: %w", err)
	}
	return nil
}

func encodeCollections(d *domain.Deal) (team, investors, attachments, trail string, err error) {
	if team, err = marshalColumn(d.PodTeam); err != nil {
		return
	}
	if investors, err = marshalColumn(d.TaggedInvestors); err != nil {
		return
	}
	if attachments, err = marshalColumn(d.Attachments); err != nil {
		return
	}
	trail, err = marshalColumn(d.AuditTrail)
	return
}

// scanDeal scans one deals row through the given Scan function, which lets
// it serve both *sql.Row and *sql.Rows.
func scanDeal(scan func(dest ...any) error) (*domain.Deal, error) {
	var d domain.Deal
	var dealType, stage, status string
	var team, investors, attachments, trail string
	var createdAtStr, updatedAtStr string

	err := scan(
		&d.ID, &d.Name, &d.Client, &d.Sector, &d.Value, &d.Lead,
		&dealType, &stage, &status,
		&d.Progress, &d.Notes,
		&team, &investors, &attachments, &trail,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning deal: %w", err)
	}

	d.DealType = domain.DealType(dealType)
	d.Stage = domain.Stage(stage)
	d.Status = domain.DealStatus(status)

	if err := unmarshalColumn(team, &d.PodTeam); err != nil {
		return nil, fmt.Errorf("pod_team: %w", err)
	}
	if err := unmarshalColumn(investors, &d.TaggedInvestors); err != nil {
		return nil, fmt.Errorf("tagged_investors: %w", err)
	}
	if err := unmarshalColumn(attachments, &d.Attachments); err != nil {
		return nil, fmt.Errorf("attachments: %w", err)
	}
	if err := unmarshalColumn(trail, &d.AuditTrail); err != nil {
		return nil, fmt.Errorf("audit_trail: %w", err)
	}

	var parseErr error
	d.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	d.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &d, nil
}
