package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"couple-wellness-backend/internal/mission"
	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	spouse *models.Member
	err    error
}

func (s stubResolver) ResolveSpouse(context.Context, int64) (*models.Member, error) {
	return s.spouse, s.err
}

func TestMissionService_GetWeeklyMissionStatus(t *testing.T) {
	ctx := context.Background()
	ref := time.Date(2024, 10, 31, 15, 0, 0, 0, time.UTC)

	t.Run("buckets both members by day", func(t *testing.T) {
		emotions := mocks.NewEmotionStore(t)
		svc := NewMissionService(stubResolver{spouse: husband}, emotions, time.UTC)

		start := time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 11, 2, 23, 59, 59, 999999999, time.UTC)

		emotions.On("ListMissionFlags", ctx, wife.ID, start, end).Return([]models.MissionFlag{
			{IsComplement: false, CreatedAt: time.Date(2024, 10, 27, 9, 0, 0, 0, time.UTC)},
			{IsComplement: true, CreatedAt: time.Date(2024, 10, 29, 20, 0, 0, 0, time.UTC)},
		}, nil).Once()
		emotions.On("ListMissionFlags", ctx, husband.ID, start, end).Return(nil, nil).Once()

		status, err := svc.GetWeeklyMissionStatus(ctx, wife.ID, ref)
		require.NoError(t, err)

		assert.Equal(t, "2024-10-27", status.WeekStart)
		assert.Equal(t, "2024-11-02", status.WeekEnd)
		assert.Equal(t, husband.ID, status.SpouseID)

		assert.Equal(t, []mission.Entry{{IsComplement: false, Date: "2024-10-27, SUN"}}, status.Member[mission.Sunday])
		assert.Equal(t, []mission.Entry{{IsComplement: true, Date: "2024-10-29, TUE"}}, status.Member[mission.Tuesday])
		assert.Equal(t, 2, status.Member.Len())

		assert.Len(t, status.Spouse, 7)
		assert.Equal(t, 0, status.Spouse.Len())

		body, err := json.Marshal(status.Spouse)
		require.NoError(t, err)
		assert.JSONEq(t, `{"SUN":[],"MON":[],"TUE":[],"WED":[],"THU":[],"FRI":[],"SAT":[]}`, string(body))
	})

	t.Run("uses the application time zone", func(t *testing.T) {
		seoul := time.FixedZone("KST", 9*60*60)
		emotions := mocks.NewEmotionStore(t)
		svc := NewMissionService(stubResolver{spouse: husband}, emotions, seoul)

		// Saturday 16:00 UTC is already Sunday in Seoul, which starts the next week
		late := time.Date(2024, 11, 2, 16, 0, 0, 0, time.UTC)
		emotions.On("ListMissionFlags", ctx, wife.ID, mock.Anything, mock.Anything).Return([]models.MissionFlag{
			{IsComplement: true, CreatedAt: late},
		}, nil).Once()
		emotions.On("ListMissionFlags", ctx, husband.ID, mock.Anything, mock.Anything).Return(nil, nil).Once()

		status, err := svc.GetWeeklyMissionStatus(ctx, wife.ID, late)
		require.NoError(t, err)

		assert.Equal(t, "2024-11-03", status.WeekStart)
		assert.Equal(t, []mission.Entry{{IsComplement: true, Date: "2024-11-03, SUN"}}, status.Member[mission.Sunday])
	})

	t.Run("drops flags outside the window", func(t *testing.T) {
		emotions := mocks.NewEmotionStore(t)
		svc := NewMissionService(stubResolver{spouse: husband}, emotions, time.UTC)

		emotions.On("ListMissionFlags", ctx, wife.ID, mock.Anything, mock.Anything).Return([]models.MissionFlag{
			{IsComplement: true, CreatedAt: time.Date(2024, 10, 26, 23, 59, 0, 0, time.UTC)},
			{IsComplement: true, CreatedAt: time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC)},
		}, nil).Once()
		emotions.On("ListMissionFlags", ctx, husband.ID, mock.Anything, mock.Anything).Return(nil, nil).Once()

		status, err := svc.GetWeeklyMissionStatus(ctx, wife.ID, ref)
		require.NoError(t, err)
		assert.Equal(t, 0, status.Member.Len())
	})

	t.Run("not paired", func(t *testing.T) {
		emotions := mocks.NewEmotionStore(t)
		svc := NewMissionService(stubResolver{err: models.ErrNotPaired}, emotions, time.UTC)

		_, err := svc.GetWeeklyMissionStatus(ctx, wife.ID, ref)
		assert.ErrorIs(t, err, models.ErrNotPaired)
	})
}
