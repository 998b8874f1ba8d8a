package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignEmotionID(id int64) func(context.Context, *models.EmotionRecord) error {
	return func(_ context.Context, e *models.EmotionRecord) error {
		e.ID = id
		return nil
	}
}

func TestEmotionService_Create_RunsSteps(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		isComplement bool
		wantSteps    []string
	}{
		{"incomplete mission", false, []string{"first", "second"}},
		{"completed mission", true, []string{"first", "second", "completed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emotions := mocks.NewEmotionStore(t)
			svc := NewEmotionService(emotions)

			var ran []string
			step := func(name string) EmotionStep {
				return EmotionStep{Name: name, Run: func(_ context.Context, r *models.EmotionRecord) error {
					assert.Equal(t, int64(21), r.ID)
					ran = append(ran, name)
					return nil
				}}
			}
			svc.OnCreated(step("first"))
			svc.OnCreated(step("second"))
			svc.OnCompleted(step("completed"))

			emotions.On("Create", ctx, mock.AnythingOfType("*models.EmotionRecord")).
				Return(assignEmotionID(21)).Once()

			record, err := svc.Create(ctx, wife.ID, EmotionInput{
				MissionContent: "Take a walk together",
				IsComplement:   tt.isComplement,
				Joy:            3,
			})
			require.NoError(t, err)

			assert.Equal(t, wife.ID, record.MemberID)
			assert.Equal(t, 3, record.Joy)
			assert.Equal(t, tt.wantSteps, ran)
		})
	}
}

func TestEmotionService_Create_StepFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	emotions := mocks.NewEmotionStore(t)
	svc := NewEmotionService(emotions)

	afterFailure := false
	svc.OnCreated(EmotionStep{Name: "broken", Run: func(context.Context, *models.EmotionRecord) error {
		return errors.New("boom")
	}})
	svc.OnCreated(EmotionStep{Name: "after", Run: func(context.Context, *models.EmotionRecord) error {
		afterFailure = true
		return nil
	}})

	emotions.On("Create", ctx, mock.Anything).Return(assignEmotionID(1)).Once()

	_, err := svc.Create(ctx, wife.ID, EmotionInput{MissionContent: "Cook dinner"})
	require.NoError(t, err)
	assert.True(t, afterFailure)
}

func TestEmotionService_Create_Validation(t *testing.T) {
	svc := NewEmotionService(mocks.NewEmotionStore(t))

	_, err := svc.Create(context.Background(), wife.ID, EmotionInput{Joy: -1})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

// modifyStored runs the mutation against a copy of stored the way the repository does,
// reporting the stored completion state
func modifyStored(stored models.EmotionRecord) func(context.Context, int64, func(*models.EmotionRecord) error) (*models.EmotionRecord, bool, error) {
	return func(_ context.Context, _ int64, mutate func(*models.EmotionRecord) error) (*models.EmotionRecord, bool, error) {
		record := stored
		if err := mutate(&record); err != nil {
			return nil, false, err
		}
		return &record, stored.IsComplement, nil
	}
}

func TestEmotionService_Update(t *testing.T) {
	ctx := context.Background()
	done := true

	t.Run("completing a mission runs completion steps", func(t *testing.T) {
		emotions := mocks.NewEmotionStore(t)
		svc := NewEmotionService(emotions)

		completed := 0
		svc.OnCompleted(EmotionStep{Name: "count", Run: func(context.Context, *models.EmotionRecord) error {
			completed++
			return nil
		}})

		existing := models.EmotionRecord{ID: 4, MemberID: wife.ID, MissionContent: "Hug"}
		emotions.On("Modify", ctx, int64(4), mock.Anything).Return(modifyStored(existing)).Once()

		record, err := svc.Update(ctx, wife.ID, 4, models.EmotionPatch{IsComplement: &done})
		require.NoError(t, err)
		assert.True(t, record.IsComplement)
		assert.Equal(t, "Hug", record.MissionContent)
		assert.Equal(t, 1, completed)
	})

	t.Run("already complete does not notify again", func(t *testing.T) {
		emotions := mocks.NewEmotionStore(t)
		svc := NewEmotionService(emotions)

		completed := 0
		svc.OnCompleted(EmotionStep{Name: "count", Run: func(context.Context, *models.EmotionRecord) error {
			completed++
			return nil
		}})

		existing := models.EmotionRecord{ID: 4, MemberID: wife.ID, MissionContent: "Hug", IsComplement: true}
		emotions.On("Modify", ctx, int64(4), mock.Anything).Return(modifyStored(existing)).Once()

		_, err := svc.Update(ctx, wife.ID, 4, models.EmotionPatch{IsComplement: &done})
		require.NoError(t, err)
		assert.Equal(t, 0, completed)
	})

	t.Run("someone else's record is not found", func(t *testing.T) {
		emotions := mocks.NewEmotionStore(t)
		svc := NewEmotionService(emotions)

		existing := models.EmotionRecord{ID: 4, MemberID: husband.ID}
		emotions.On("Modify", ctx, int64(4), mock.Anything).Return(modifyStored(existing)).Once()

		_, err := svc.Update(ctx, wife.ID, 4, models.EmotionPatch{IsComplement: &done})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("missing record", func(t *testing.T) {
		emotions := mocks.NewEmotionStore(t)
		svc := NewEmotionService(emotions)

		emotions.On("Modify", ctx, int64(4), mock.Anything).Return(nil, false, models.ErrNotFound).Once()

		_, err := svc.Update(ctx, wife.ID, 4, models.EmotionPatch{IsComplement: &done})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("empty mission content", func(t *testing.T) {
		svc := NewEmotionService(mocks.NewEmotionStore(t))
		empty := ""

		_, err := svc.Update(ctx, wife.ID, 4, models.EmotionPatch{MissionContent: &empty})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

// lockedEmotionStore serializes Modify over one stored record, like a row lock
type lockedEmotionStore struct {
	*mocks.EmotionStore
	mu     sync.Mutex
	record models.EmotionRecord
}

func (s *lockedEmotionStore) Modify(_ context.Context, _ int64, mutate func(*models.EmotionRecord) error) (*models.EmotionRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasComplete := s.record.IsComplement
	next := s.record
	if err := mutate(&next); err != nil {
		return nil, false, err
	}
	s.record = next
	return &next, wasComplete, nil
}

func TestEmotionService_Update_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := &lockedEmotionStore{
		EmotionStore: mocks.NewEmotionStore(t),
		record:       models.EmotionRecord{ID: 4, MemberID: wife.ID, MissionContent: "Hug"},
	}
	svc := NewEmotionService(store)

	var completed atomic.Int32
	svc.OnCompleted(EmotionStep{Name: "count", Run: func(context.Context, *models.EmotionRecord) error {
		completed.Add(1)
		return nil
	}})

	done := true
	keyword := "travel"
	message := "see you tonight"
	patches := []models.EmotionPatch{
		{IsComplement: &done},
		{InterestKeyword: &keyword},
		{SelfMessage: &message},
		{IsComplement: &done},
		{IsComplement: &done},
		{IsComplement: &done},
	}

	var wg sync.WaitGroup
	for _, patch := range patches {
		wg.Add(1)
		go func(patch models.EmotionPatch) {
			defer wg.Done()
			_, err := svc.Update(ctx, wife.ID, 4, patch)
			assert.NoError(t, err)
		}(patch)
	}
	wg.Wait()

	assert.Equal(t, int32(1), completed.Load())
	assert.True(t, store.record.IsComplement)
	assert.Equal(t, keyword, store.record.InterestKeyword)
	assert.Equal(t, message, store.record.SelfMessage)
}

func TestEmotionService_Latest(t *testing.T) {
	ctx := context.Background()
	emotions := mocks.NewEmotionStore(t)
	svc := NewEmotionService(emotions)

	emotions.On("Latest", ctx, wife.ID).Return(&models.EmotionRecord{ID: 8, MemberID: wife.ID}, nil).Once()
	emotions.On("CountByMember", ctx, wife.ID).Return(3, nil).Once()
	emotions.On("Latest", ctx, husband.ID).Return(nil, models.ErrNotFound).Once()

	record, total, err := svc.Latest(ctx, wife.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), record.ID)
	assert.Equal(t, 3, total)

	_, _, err = svc.Latest(ctx, husband.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNotifySpouseStep(t *testing.T) {
	ctx := context.Background()
	record := &models.EmotionRecord{ID: 3, MemberID: wife.ID, IsComplement: true}

	t.Run("notifies the spouse", func(t *testing.T) {
		notifier := &recordingNotifier{}
		step := NotifySpouseStep(stubResolver{spouse: husband}, notifier)

		require.NoError(t, step.Run(ctx, record))
		assert.Equal(t, []int64{husband.ID}, notifier.completed)
	})

	t.Run("unpaired member", func(t *testing.T) {
		notifier := &recordingNotifier{}
		step := NotifySpouseStep(stubResolver{err: models.ErrNotPaired}, notifier)

		assert.ErrorIs(t, step.Run(ctx, record), models.ErrNotPaired)
		assert.Empty(t, notifier.completed)
	})
}
