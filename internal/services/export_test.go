package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryObjectStore struct {
	objects map[string][]byte
	expires time.Duration
}

func (s *memoryObjectStore) Put(_ context.Context, key string, body []byte, _ string) error {
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[key] = body
	return nil
}

func (s *memoryObjectStore) PresignGet(_ context.Context, key string, expires time.Duration) (string, error) {
	s.expires = expires
	return "https://objects.example.com/" + key + "?signature=test", nil
}

func TestExportService_Export(t *testing.T) {
	ctx := context.Background()

	members := mocks.NewMemberStore(t)
	emotions := mocks.NewEmotionStore(t)
	interests := mocks.NewInterestStore(t)
	tests := mocks.NewInfertilityStore(t)
	counsels := mocks.NewCounselStore(t)
	store := &memoryObjectStore{}

	members.On("GetByID", ctx, wife.ID).Return(wife, nil).Once()
	emotions.On("ListByMember", ctx, wife.ID).Return([]*models.EmotionRecord{{ID: 1, MemberID: wife.ID}}, nil).Once()
	interests.On("ListByMember", ctx, wife.ID).Return([]*models.Interest{{ID: 2, MemberID: wife.ID}}, nil).Once()
	tests.On("ListByMember", ctx, wife.ID).Return(nil, nil).Once()
	counsels.On("ListByMember", ctx, wife.ID).Return(nil, nil).Once()

	svc := NewExportService(store, members, emotions, interests, tests, counsels)
	result, err := svc.Export(ctx, wife.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Key, "exports/1/"))
	assert.True(t, strings.HasSuffix(result.Key, ".json"))
	assert.Contains(t, result.DownloadURL, result.Key)
	assert.Equal(t, 900, result.ExpiresIn)
	assert.Equal(t, 15*time.Minute, store.expires)

	var archive Archive
	require.NoError(t, json.Unmarshal(store.objects[result.Key], &archive))
	assert.Equal(t, wife.Email, archive.Member.Email)
	assert.Len(t, archive.Emotions, 1)
	assert.Len(t, archive.Interests, 1)
}

func TestExportService_Unavailable(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil, nil, nil)

	_, err := svc.Export(context.Background(), wife.ID)
	assert.ErrorIs(t, err, models.ErrUnavailable)
}
