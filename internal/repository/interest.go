package repository

import (
	"context"
	"fmt"

	"couple-wellness-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InterestRepository handles database operations for interests
type InterestRepository struct {
	db *pgxpool.Pool
}

// NewInterestRepository creates a new interest repository
func NewInterestRepository(db *pgxpool.Pool) *InterestRepository {
	return &InterestRepository{db: db}
}

// Create inserts an interest and fills its ID and CreatedAt
func (r *InterestRepository) Create(ctx context.Context, in *models.Interest) error {
	query := `
		INSERT INTO interests (member_id, emotion_id, interests)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, in.MemberID, in.EmotionID, in.Interests).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("interest for emotion: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to create interest: %w", err)
	}
	return nil
}

// CreateForEmotion inserts the interest derived from an emotion record once.
// It reports false when the emotion already has one.
func (r *InterestRepository) CreateForEmotion(ctx context.Context, in *models.Interest) (bool, error) {
	query := `
		INSERT INTO interests (member_id, emotion_id, interests)
		VALUES ($1, $2, $3)
		ON CONFLICT (emotion_id) DO NOTHING
		RETURNING id, created_at
	`
	rows, err := r.db.Query(ctx, query, in.MemberID, in.EmotionID, in.Interests)
	if err != nil {
		return false, fmt.Errorf("failed to derive interest: %w", err)
	}
	defer rows.Close()

	created := false
	if rows.Next() {
		if err := rows.Scan(&in.ID, &in.CreatedAt); err != nil {
			return false, fmt.Errorf("failed to scan interest: %w", err)
		}
		created = true
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("failed to derive interest: %w", err)
	}
	return created, nil
}

// ListByMember retrieves all interests of a member, newest first
func (r *InterestRepository) ListByMember(ctx context.Context, memberID int64) ([]*models.Interest, error) {
	query := `
		SELECT id, member_id, emotion_id, interests, created_at
		FROM interests
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get interests: %w", err)
	}
	defer rows.Close()

	var interests []*models.Interest
	for rows.Next() {
		var in models.Interest
		if err := rows.Scan(&in.ID, &in.MemberID, &in.EmotionID, &in.Interests, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interest: %w", err)
		}
		interests = append(interests, &in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interests: %w", err)
	}
	return interests, nil
}
