package repository

import (
	"context"
	"errors"
	"fmt"

	"couple-wellness-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CoupleRepository handles database operations for couples
type CoupleRepository struct {
	db *pgxpool.Pool
}

// NewCoupleRepository creates a new couple repository
func NewCoupleRepository(db *pgxpool.Pool) *CoupleRepository {
	return &CoupleRepository{db: db}
}

const coupleColumns = `id, wife_id, husband_id, created_at`

func scanCouple(row pgx.Row) (*models.Couple, error) {
	var c models.Couple
	if err := row.Scan(&c.ID, &c.WifeID, &c.HusbandID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateExclusive inserts a couple unless either member already sits in one.
// The check and the insert share a transaction that holds advisory locks on
// both member ids; the unique constraints on each slot back it up.
func (r *CoupleRepository) CreateExclusive(ctx context.Context, wifeID, husbandID int64) (*models.Couple, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin couple transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	first, second := wifeID, husbandID
	if first > second {
		first, second = second, first
	}
	for _, id := range []int64{first, second} {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, id); err != nil {
			return nil, fmt.Errorf("failed to lock member %d: %w", id, err)
		}
	}

	var paired bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM couples
			WHERE wife_id IN ($1, $2) OR husband_id IN ($1, $2)
		)
	`, wifeID, husbandID).Scan(&paired)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing couples: %w", err)
	}
	if paired {
		return nil, models.ErrAlreadyPaired
	}

	couple, err := scanCouple(tx.QueryRow(ctx, `
		INSERT INTO couples (wife_id, husband_id)
		VALUES ($1, $2)
		RETURNING `+coupleColumns,
		wifeID, husbandID,
	))
	if err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return nil, models.ErrAlreadyPaired
		}
		return nil, fmt.Errorf("failed to create couple: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return nil, models.ErrAlreadyPaired
		}
		return nil, fmt.Errorf("failed to commit couple: %w", err)
	}
	return couple, nil
}

// GetByWife retrieves the couple whose wife slot holds memberID
func (r *CoupleRepository) GetByWife(ctx context.Context, memberID int64) (*models.Couple, error) {
	return r.getBy(ctx, `wife_id = $1`, memberID)
}

// GetByHusband retrieves the couple whose husband slot holds memberID
func (r *CoupleRepository) GetByHusband(ctx context.Context, memberID int64) (*models.Couple, error) {
	return r.getBy(ctx, `husband_id = $1`, memberID)
}

// GetByMember retrieves the couple holding memberID in either slot
func (r *CoupleRepository) GetByMember(ctx context.Context, memberID int64) (*models.Couple, error) {
	return r.getBy(ctx, `wife_id = $1 OR husband_id = $1`, memberID)
}

func (r *CoupleRepository) getBy(ctx context.Context, where string, memberID int64) (*models.Couple, error) {
	query := `SELECT ` + coupleColumns + ` FROM couples WHERE ` + where + ` LIMIT 1`
	couple, err := scanCouple(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotPaired
		}
		return nil, fmt.Errorf("failed to get couple: %w", err)
	}
	return couple, nil
}
