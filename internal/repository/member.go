package repository

import (
	"context"
	"fmt"

	"couple-wellness-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberColumns = `id, username, email, password_hash, identification, gender, age, is_infertility, push_token, created_at`

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID, &m.Username, &m.Email, &m.PasswordHash, &m.Identification,
		&m.Gender, &m.Age, &m.IsInfertility, &m.PushToken, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a member and fills its ID and CreatedAt
func (r *MemberRepository) Create(ctx context.Context, m *models.Member) error {
	query := `
		INSERT INTO members (username, email, password_hash, identification, gender, age, is_infertility)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		m.Username, m.Email, m.PasswordHash, m.Identification, m.Gender, m.Age, m.IsInfertility,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("member violates %s: %w", constraint, models.ErrConflict)
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	m, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "member")
	}
	return m, nil
}

// GetByEmail retrieves a member by email
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE email = $1`
	m, err := scanMember(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, notFound(err, "member")
	}
	return m, nil
}

// EmailExists checks if an email is already registered
func (r *MemberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// IdentificationExists checks if an identification code is already registered
func (r *MemberRepository) IdentificationExists(ctx context.Context, identification string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM members WHERE identification = $1)`, identification,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check identification existence: %w", err)
	}
	return exists, nil
}

// UpdatePushToken updates the push token for a member
func (r *MemberRepository) UpdatePushToken(ctx context.Context, memberID int64, pushToken *string) error {
	result, err := r.db.Exec(ctx, `UPDATE members SET push_token = $1 WHERE id = $2`, pushToken, memberID)
	if err != nil {
		return fmt.Errorf("failed to update push token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("member: %w", models.ErrNotFound)
	}
	return nil
}
