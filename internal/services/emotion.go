package services

import (
	"context"
	"errors"
	"fmt"

	"couple-wellness-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// EmotionStep runs after an emotion record is stored. Steps must be idempotent.
type EmotionStep struct {
	Name string
	Run  func(ctx context.Context, record *models.EmotionRecord) error
}

// EmotionService handles emotion records and their follow-up steps
type EmotionService struct {
	emotionRepo EmotionStore
	onCreated   []EmotionStep
	onCompleted []EmotionStep
}

// NewEmotionService creates a new emotion service
func NewEmotionService(emotionRepo EmotionStore) *EmotionService {
	return &EmotionService{emotionRepo: emotionRepo}
}

// OnCreated registers a step that runs after every new record
func (s *EmotionService) OnCreated(step EmotionStep) {
	s.onCreated = append(s.onCreated, step)
}

// OnCompleted registers a step that runs when a record's mission becomes complete,
// either at creation or through an update.
func (s *EmotionService) OnCompleted(step EmotionStep) {
	s.onCompleted = append(s.onCompleted, step)
}

// EmotionInput is the body of a new emotion record
type EmotionInput struct {
	MissionContent  string `json:"mission_content" validate:"required"`
	IsComplement    bool   `json:"is_complement"`
	InterestKeyword string `json:"interest_keyword"`
	SelfMessage     string `json:"self_message"`
	ExportMessage   string `json:"export_message"`
	Joy             int    `json:"joy" validate:"min=0"`
	Sadness         int    `json:"sadness" validate:"min=0"`
	Anger           int    `json:"anger" validate:"min=0"`
	Fear            int    `json:"fear" validate:"min=0"`
	Surprise        int    `json:"surprise" validate:"min=0"`
	Disgust         int    `json:"disgust" validate:"min=0"`
	Total           int    `json:"total" validate:"min=0"`
	Social          int    `json:"social" validate:"min=0"`
	Sexual          int    `json:"sexual" validate:"min=0"`
	Relational      int    `json:"relational" validate:"min=0"`
	Refusing        int    `json:"refusing" validate:"min=0"`
	Essential       int    `json:"essential" validate:"min=0"`
}

// Create stores a new emotion record for the member and runs the registered steps
func (s *EmotionService) Create(ctx context.Context, memberID int64, in EmotionInput) (*models.EmotionRecord, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	record := &models.EmotionRecord{
		MemberID:        memberID,
		MissionContent:  in.MissionContent,
		IsComplement:    in.IsComplement,
		InterestKeyword: in.InterestKeyword,
		SelfMessage:     in.SelfMessage,
		ExportMessage:   in.ExportMessage,
		EmotionScores: models.EmotionScores{
			Joy:      in.Joy,
			Sadness:  in.Sadness,
			Anger:    in.Anger,
			Fear:     in.Fear,
			Surprise: in.Surprise,
			Disgust:  in.Disgust,
		},
		Total: in.Total,
		StressScores: models.StressScores{
			Social:     in.Social,
			Sexual:     in.Sexual,
			Relational: in.Relational,
			Refusing:   in.Refusing,
			Essential:  in.Essential,
		},
	}

	if err := s.emotionRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.run(ctx, s.onCreated, record)
	if record.IsComplement {
		s.run(ctx, s.onCompleted, record)
	}

	return record, nil
}

// Latest returns the member's most recent record and how many records they have
func (s *EmotionService) Latest(ctx context.Context, memberID int64) (*models.EmotionRecord, int, error) {
	record, err := s.emotionRepo.Latest(ctx, memberID)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.emotionRepo.CountByMember(ctx, memberID)
	if err != nil {
		return nil, 0, err
	}
	return record, total, nil
}

// Get returns a record owned by the member
func (s *EmotionService) Get(ctx context.Context, memberID, recordID int64) (*models.EmotionRecord, error) {
	record, err := s.emotionRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.MemberID != memberID {
		return nil, fmt.Errorf("emotion record %d: %w", recordID, models.ErrNotFound)
	}
	return record, nil
}

// Update applies a partial update to a record owned by the member. Completion steps run
// only for the update that moves the mission from incomplete to complete.
func (s *EmotionService) Update(ctx context.Context, memberID, recordID int64, patch models.EmotionPatch) (*models.EmotionRecord, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.MissionContent != nil && *patch.MissionContent == "" {
		return nil, models.NewValidationError("mission_content", "is required")
	}

	record, wasComplete, err := s.emotionRepo.Modify(ctx, recordID, func(r *models.EmotionRecord) error {
		if r.MemberID != memberID {
			return fmt.Errorf("emotion record %d: %w", recordID, models.ErrNotFound)
		}
		patch.Apply(r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !wasComplete && record.IsComplement {
		s.run(ctx, s.onCompleted, record)
	}
	return record, nil
}

// ListByMember returns all records of the member, newest first
func (s *EmotionService) ListByMember(ctx context.Context, memberID int64) ([]*models.EmotionRecord, error) {
	return s.emotionRepo.ListByMember(ctx, memberID)
}

func (s *EmotionService) run(ctx context.Context, steps []EmotionStep, record *models.EmotionRecord) {
	for _, step := range steps {
		if err := step.Run(ctx, record); err != nil {
			event := log.Error()
			if errors.Is(err, models.ErrNotPaired) {
				event = log.Debug()
			}
			event.
				Err(err).
				Str("step", step.Name).
				Int64("emotion_id", record.ID).
				Int64("member_id", record.MemberID).
				Msg("Emotion step failed")
		}
	}
}

// NotifySpouseStep tells the member's spouse that a mission was completed
func NotifySpouseStep(couples SpouseResolver, notifier Notifier) EmotionStep {
	return EmotionStep{
		Name: "notify_spouse",
		Run: func(ctx context.Context, record *models.EmotionRecord) error {
			spouse, err := couples.ResolveSpouse(ctx, record.MemberID)
			if err != nil {
				return err
			}
			notifier.MissionCompleted(ctx, record, spouse)
			return nil
		},
	}
}
