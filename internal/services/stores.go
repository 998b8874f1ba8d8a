//go:generate mockery --name "MemberStore|CoupleStore|EmotionStore|InterestStore|InfertilityStore|CounselStore" --output ./mocks --outpkg mocks --case=underscore
package services

import (
	"context"
	"time"

	"couple-wellness-backend/internal/models"
)

// The repository package satisfies these interfaces with pgx-backed types.

type MemberStore interface {
	Create(ctx context.Context, m *models.Member) error
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	IdentificationExists(ctx context.Context, identification string) (bool, error)
	UpdatePushToken(ctx context.Context, memberID int64, pushToken *string) error
}

type CoupleStore interface {
	CreateExclusive(ctx context.Context, wifeID, husbandID int64) (*models.Couple, error)
	GetByWife(ctx context.Context, memberID int64) (*models.Couple, error)
	GetByHusband(ctx context.Context, memberID int64) (*models.Couple, error)
	GetByMember(ctx context.Context, memberID int64) (*models.Couple, error)
}

type EmotionStore interface {
	Create(ctx context.Context, e *models.EmotionRecord) error
	GetByID(ctx context.Context, id int64) (*models.EmotionRecord, error)
	Modify(ctx context.Context, id int64, mutate func(*models.EmotionRecord) error) (*models.EmotionRecord, bool, error)
	Latest(ctx context.Context, memberID int64) (*models.EmotionRecord, error)
	CountByMember(ctx context.Context, memberID int64) (int, error)
	ListByMember(ctx context.Context, memberID int64) ([]*models.EmotionRecord, error)
	ListMissionFlags(ctx context.Context, memberID int64, start, end time.Time) ([]models.MissionFlag, error)
}

type InterestStore interface {
	Create(ctx context.Context, in *models.Interest) error
	CreateForEmotion(ctx context.Context, in *models.Interest) (bool, error)
	ListByMember(ctx context.Context, memberID int64) ([]*models.Interest, error)
}

type InfertilityStore interface {
	Create(ctx context.Context, t *models.InfertilityTest) error
	GetByID(ctx context.Context, id int64) (*models.InfertilityTest, error)
	ListByMember(ctx context.Context, memberID int64) ([]*models.InfertilityTest, error)
	Previous(ctx context.Context, t *models.InfertilityTest) (*models.InfertilityTest, error)
}

type CounselStore interface {
	Create(ctx context.Context, c *models.CounselRecord) error
	GetByID(ctx context.Context, id int64) (*models.CounselRecord, error)
	ListByMember(ctx context.Context, memberID int64) ([]*models.CounselRecord, error)
}
