package repository

import (
	"context"
	"fmt"

	"couple-wellness-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InfertilityRepository handles database operations for infertility tests
type InfertilityRepository struct {
	db *pgxpool.Pool
}

// NewInfertilityRepository creates a new infertility test repository
func NewInfertilityRepository(db *pgxpool.Pool) *InfertilityRepository {
	return &InfertilityRepository{db: db}
}

const infertilityColumns = `id, member_id, total, social, sexual, relational, refusing, essential, beliefs, created_at`

func scanInfertility(row pgx.Row) (*models.InfertilityTest, error) {
	var t models.InfertilityTest
	err := row.Scan(
		&t.ID, &t.MemberID, &t.Total,
		&t.Social, &t.Sexual, &t.Relational, &t.Refusing, &t.Essential,
		&t.Beliefs, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a test and fills its ID and CreatedAt
func (r *InfertilityRepository) Create(ctx context.Context, t *models.InfertilityTest) error {
	query := `
		INSERT INTO infertility_tests (member_id, total, social, sexual, relational, refusing, essential, beliefs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		t.MemberID, t.Total, t.Social, t.Sexual, t.Relational, t.Refusing, t.Essential, t.Beliefs,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create infertility test: %w", err)
	}
	return nil
}

// GetByID retrieves a test by ID
func (r *InfertilityRepository) GetByID(ctx context.Context, id int64) (*models.InfertilityTest, error) {
	query := `SELECT ` + infertilityColumns + ` FROM infertility_tests WHERE id = $1`
	t, err := scanInfertility(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "infertility test")
	}
	return t, nil
}

// ListByMember retrieves the tests of a member, newest first
func (r *InfertilityRepository) ListByMember(ctx context.Context, memberID int64) ([]*models.InfertilityTest, error) {
	query := `SELECT ` + infertilityColumns + ` FROM infertility_tests
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get infertility tests: %w", err)
	}
	defer rows.Close()

	var tests []*models.InfertilityTest
	for rows.Next() {
		t, err := scanInfertility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan infertility test: %w", err)
		}
		tests = append(tests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating infertility tests: %w", err)
	}
	return tests, nil
}

// Previous retrieves the member's test taken right before t
func (r *InfertilityRepository) Previous(ctx context.Context, t *models.InfertilityTest) (*models.InfertilityTest, error) {
	query := `SELECT ` + infertilityColumns + ` FROM infertility_tests
		WHERE member_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
	prev, err := scanInfertility(r.db.QueryRow(ctx, query, t.MemberID, t.CreatedAt, t.ID))
	if err != nil {
		return nil, notFound(err, "previous infertility test")
	}
	return prev, nil
}
