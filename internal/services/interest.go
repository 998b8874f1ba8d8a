package services

import (
	"context"
	"strings"

	"couple-wellness-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// InterestService handles member interests
type InterestService struct {
	interestRepo InterestStore
}

// NewInterestService creates a new interest service
func NewInterestService(interestRepo InterestStore) *InterestService {
	return &InterestService{interestRepo: interestRepo}
}

// InterestInput is the body of a manually recorded interest
type InterestInput struct {
	Interests string `json:"interests" validate:"required"`
}

// Create stores an interest for the member
func (s *InterestService) Create(ctx context.Context, memberID int64, in InterestInput) (*models.Interest, error) {
	in.Interests = strings.TrimSpace(in.Interests)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	interest := &models.Interest{MemberID: memberID, Interests: in.Interests}
	if err := s.interestRepo.Create(ctx, interest); err != nil {
		return nil, err
	}
	return interest, nil
}

// List returns the member's interests, newest first
func (s *InterestService) List(ctx context.Context, memberID int64) ([]*models.Interest, error) {
	return s.interestRepo.ListByMember(ctx, memberID)
}

// RecordFromEmotion stores the interest keywords of an emotion record.
// Running it again for the same record is a no-op.
func (s *InterestService) RecordFromEmotion(ctx context.Context, record *models.EmotionRecord) error {
	keywords := strings.TrimSpace(record.InterestKeyword)
	if keywords == "" {
		return nil
	}

	emotionID := record.ID
	interest := &models.Interest{
		MemberID:  record.MemberID,
		EmotionID: &emotionID,
		Interests: keywords,
	}
	created, err := s.interestRepo.CreateForEmotion(ctx, interest)
	if err != nil {
		return err
	}
	if created {
		log.Debug().
			Int64("interest_id", interest.ID).
			Int64("emotion_id", emotionID).
			Msg("Interest recorded from emotion")
	}
	return nil
}

// RecordFromEmotionStep wraps RecordFromEmotion for EmotionService.OnCreated
func (s *InterestService) RecordFromEmotionStep() EmotionStep {
	return EmotionStep{Name: "record_interest", Run: s.RecordFromEmotion}
}
