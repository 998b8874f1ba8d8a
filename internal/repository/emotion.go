package repository

import (
	"context"
	"fmt"
	"time"

	"couple-wellness-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmotionRepository handles database operations for emotion records
type EmotionRepository struct {
	db *pgxpool.Pool
}

// NewEmotionRepository creates a new emotion repository
func NewEmotionRepository(db *pgxpool.Pool) *EmotionRepository {
	return &EmotionRepository{db: db}
}

const emotionColumns = `id, member_id, mission_content, is_complement, interest_keyword,
	self_message, export_message, joy, sadness, anger, fear, surprise, disgust, total,
	social, sexual, relational, refusing, essential, created_at`

func scanEmotion(row pgx.Row) (*models.EmotionRecord, error) {
	var e models.EmotionRecord
	err := row.Scan(
		&e.ID, &e.MemberID, &e.MissionContent, &e.IsComplement, &e.InterestKeyword,
		&e.SelfMessage, &e.ExportMessage,
		&e.Joy, &e.Sadness, &e.Anger, &e.Fear, &e.Surprise, &e.Disgust, &e.Total,
		&e.Social, &e.Sexual, &e.Relational, &e.Refusing, &e.Essential, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts an emotion record and fills its ID and CreatedAt
func (r *EmotionRepository) Create(ctx context.Context, e *models.EmotionRecord) error {
	query := `
		INSERT INTO emotions (member_id, mission_content, is_complement, interest_keyword,
			self_message, export_message, joy, sadness, anger, fear, surprise, disgust, total,
			social, sexual, relational, refusing, essential)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		e.MemberID, e.MissionContent, e.IsComplement, e.InterestKeyword,
		e.SelfMessage, e.ExportMessage,
		e.Joy, e.Sadness, e.Anger, e.Fear, e.Surprise, e.Disgust, e.Total,
		e.Social, e.Sexual, e.Relational, e.Refusing, e.Essential,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emotion record: %w", err)
	}
	return nil
}

// GetByID retrieves an emotion record by ID
func (r *EmotionRepository) GetByID(ctx context.Context, id int64) (*models.EmotionRecord, error) {
	query := `SELECT ` + emotionColumns + ` FROM emotions WHERE id = $1`
	e, err := scanEmotion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "emotion record")
	}
	return e, nil
}

// Modify locks the record, lets mutate change it and writes every mutable column back in one
// transaction. It returns the stored record and whether its mission was complete beforehand.
// member_id and created_at are kept whatever mutate does.
func (r *EmotionRepository) Modify(ctx context.Context, id int64, mutate func(*models.EmotionRecord) error) (*models.EmotionRecord, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin emotion transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + emotionColumns + ` FROM emotions WHERE id = $1 FOR UPDATE`
	e, err := scanEmotion(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, false, notFound(err, "emotion record")
	}

	wasComplete := e.IsComplement
	memberID, createdAt := e.MemberID, e.CreatedAt
	if err := mutate(e); err != nil {
		return nil, false, err
	}
	e.ID, e.MemberID, e.CreatedAt = id, memberID, createdAt

	_, err = tx.Exec(ctx, `
		UPDATE emotions SET
			mission_content = $2, is_complement = $3, interest_keyword = $4,
			self_message = $5, export_message = $6,
			joy = $7, sadness = $8, anger = $9, fear = $10, surprise = $11, disgust = $12,
			total = $13, social = $14, sexual = $15, relational = $16, refusing = $17, essential = $18
		WHERE id = $1
	`,
		e.ID, e.MissionContent, e.IsComplement, e.InterestKeyword,
		e.SelfMessage, e.ExportMessage,
		e.Joy, e.Sadness, e.Anger, e.Fear, e.Surprise, e.Disgust,
		e.Total, e.Social, e.Sexual, e.Relational, e.Refusing, e.Essential,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update emotion record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit emotion record: %w", err)
	}
	return e, wasComplete, nil
}

// Latest retrieves the most recent emotion record of a member
func (r *EmotionRepository) Latest(ctx context.Context, memberID int64) (*models.EmotionRecord, error) {
	query := `SELECT ` + emotionColumns + ` FROM emotions
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
	e, err := scanEmotion(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		return nil, notFound(err, "emotion record")
	}
	return e, nil
}

// CountByMember returns how many emotion records a member has
func (r *EmotionRepository) CountByMember(ctx context.Context, memberID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM emotions WHERE member_id = $1`, memberID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count emotion records: %w", err)
	}
	return n, nil
}

// ListByMember retrieves all emotion records of a member, newest first
func (r *EmotionRepository) ListByMember(ctx context.Context, memberID int64) ([]*models.EmotionRecord, error) {
	query := `SELECT ` + emotionColumns + ` FROM emotions
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get emotion records: %w", err)
	}
	defer rows.Close()

	var records []*models.EmotionRecord
	for rows.Next() {
		e, err := scanEmotion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emotion record: %w", err)
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating emotion records: %w", err)
	}
	return records, nil
}

// ListMissionFlags retrieves completion flags of a member with created_at in [start, end], oldest first
func (r *EmotionRepository) ListMissionFlags(ctx context.Context, memberID int64, start, end time.Time) ([]models.MissionFlag, error) {
	query := `
		SELECT is_complement, created_at
		FROM emotions
		WHERE member_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, memberID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission flags: %w", err)
	}
	defer rows.Close()

	var flags []models.MissionFlag
	for rows.Next() {
		var f models.MissionFlag
		if err := rows.Scan(&f.IsComplement, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mission flag: %w", err)
		}
		flags = append(flags, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mission flags: %w", err)
	}
	return flags, nil
}
