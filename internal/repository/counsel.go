package repository

import (
	"context"
	"fmt"

	"couple-wellness-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CounselRepository handles database operations for counsel records
type CounselRepository struct {
	db *pgxpool.Pool
}

// NewCounselRepository creates a new counsel repository
func NewCounselRepository(db *pgxpool.Pool) *CounselRepository {
	return &CounselRepository{db: db}
}

const counselColumns = `id, member_id, summary, tags, count, created_at, updated_at`

func scanCounsel(row pgx.Row) (*models.CounselRecord, error) {
	var c models.CounselRecord
	err := row.Scan(&c.ID, &c.MemberID, &c.Summary, &c.Tags, &c.Count, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a counsel record and fills its ID and timestamps
func (r *CounselRepository) Create(ctx context.Context, c *models.CounselRecord) error {
	query := `
		INSERT INTO counsels (member_id, summary, tags, count)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, c.MemberID, c.Summary, c.Tags, c.Count).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create counsel record: %w", err)
	}
	return nil
}

// GetByID retrieves a counsel record by ID
func (r *CounselRepository) GetByID(ctx context.Context, id int64) (*models.CounselRecord, error) {
	query := `SELECT ` + counselColumns + ` FROM counsels WHERE id = $1`
	c, err := scanCounsel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "counsel record")
	}
	return c, nil
}

// ListByMember retrieves all counsel records of a member in creation order
func (r *CounselRepository) ListByMember(ctx context.Context, memberID int64) ([]*models.CounselRecord, error) {
	query := `SELECT ` + counselColumns + ` FROM counsels
		WHERE member_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get counsel records: %w", err)
	}
	defer rows.Close()

	var records []*models.CounselRecord
	for rows.Next() {
		c, err := scanCounsel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan counsel record: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counsel records: %w", err)
	}
	return records, nil
}
