package services

import (
	"context"
	"sync"
	"testing"

	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notifications for assertions
type recordingNotifier struct {
	mu        sync.Mutex
	couples   []*models.Couple
	completed []int64
}

func (n *recordingNotifier) CoupleCreated(_ context.Context, couple *models.Couple, _, _ *models.Member) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.couples = append(n.couples, couple)
}

func (n *recordingNotifier) MissionCompleted(_ context.Context, record *models.EmotionRecord, spouse *models.Member) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.completed = append(n.completed, spouse.ID)
}

var (
	wife    = &models.Member{ID: 1, Username: "seoyeon", Email: "seoyeon@example.com", Gender: models.GenderFemale}
	husband = &models.Member{ID: 2, Username: "minho", Email: "minho@example.com", Gender: models.GenderMale}
)

func TestCoupleService_RegisterCouple(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		requester   *models.Member
		spouse      *models.Member
		wantWife    int64
		wantHusband int64
	}{
		{"wife registers husband", wife, husband, 1, 2},
		{"husband registers wife", husband, wife, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := mocks.NewMemberStore(t)
			couples := mocks.NewCoupleStore(t)
			notifier := &recordingNotifier{}
			svc := NewCoupleService(couples, members, notifier)

			members.On("GetByID", ctx, tt.requester.ID).Return(tt.requester, nil).Once()
			members.On("GetByEmail", ctx, tt.spouse.Email).Return(tt.spouse, nil).Once()
			couples.On("CreateExclusive", ctx, tt.wantWife, tt.wantHusband).
				Return(&models.Couple{ID: 9, WifeID: tt.wantWife, HusbandID: tt.wantHusband}, nil).Once()

			couple, err := svc.RegisterCouple(ctx, tt.requester.ID, tt.spouse.Email)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWife, couple.WifeID)
			assert.Equal(t, tt.wantHusband, couple.HusbandID)
			require.Len(t, notifier.couples, 1)
		})
	}
}

func TestCoupleService_RegisterCouple_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown gender persists nothing", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		couples := mocks.NewCoupleStore(t)
		svc := NewCoupleService(couples, members, nil)

		odd := &models.Member{ID: 5, Gender: "X"}
		members.On("GetByID", ctx, int64(5)).Return(odd, nil).Once()
		members.On("GetByEmail", ctx, husband.Email).Return(husband, nil).Once()

		_, err := svc.RegisterCouple(ctx, 5, husband.Email)
		assert.ErrorIs(t, err, models.ErrInvalidGender)
		couples.AssertNotCalled(t, "CreateExclusive", mock.Anything, mock.Anything, mock.Anything)
	})

	sameGender := []struct {
		name      string
		requester *models.Member
		spouse    *models.Member
	}{
		{"two husbands", husband, &models.Member{ID: 11, Email: "junho@example.com", Gender: models.GenderMale}},
		{"two wives", wife, &models.Member{ID: 12, Email: "hana@example.com", Gender: models.GenderFemale}},
		{"spouse without a valid gender", wife, &models.Member{ID: 13, Email: "odd@example.com", Gender: "X"}},
	}
	for _, tt := range sameGender {
		t.Run(tt.name+" persists nothing", func(t *testing.T) {
			members := mocks.NewMemberStore(t)
			couples := mocks.NewCoupleStore(t)
			notifier := &recordingNotifier{}
			svc := NewCoupleService(couples, members, notifier)

			members.On("GetByID", ctx, tt.requester.ID).Return(tt.requester, nil).Once()
			members.On("GetByEmail", ctx, tt.spouse.Email).Return(tt.spouse, nil).Once()

			_, err := svc.RegisterCouple(ctx, tt.requester.ID, tt.spouse.Email)
			assert.ErrorIs(t, err, models.ErrInvalidGender)
			couples.AssertNotCalled(t, "CreateExclusive", mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, notifier.couples)
		})
	}

	t.Run("already paired", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		couples := mocks.NewCoupleStore(t)
		notifier := &recordingNotifier{}
		svc := NewCoupleService(couples, members, notifier)

		members.On("GetByID", ctx, wife.ID).Return(wife, nil).Once()
		members.On("GetByEmail", ctx, husband.Email).Return(husband, nil).Once()
		couples.On("CreateExclusive", ctx, wife.ID, husband.ID).Return(nil, models.ErrAlreadyPaired).Once()

		_, err := svc.RegisterCouple(ctx, wife.ID, husband.Email)
		assert.ErrorIs(t, err, models.ErrAlreadyPaired)
		assert.Empty(t, notifier.couples)
	})

	t.Run("spouse not found", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		couples := mocks.NewCoupleStore(t)
		svc := NewCoupleService(couples, members, nil)

		members.On("GetByID", ctx, wife.ID).Return(wife, nil).Once()
		members.On("GetByEmail", ctx, "ghost@example.com").Return(nil, models.ErrNotFound).Once()

		_, err := svc.RegisterCouple(ctx, wife.ID, "ghost@example.com")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("requester not found", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		couples := mocks.NewCoupleStore(t)
		svc := NewCoupleService(couples, members, nil)

		members.On("GetByID", ctx, int64(404)).Return(nil, models.ErrNotFound).Once()

		_, err := svc.RegisterCouple(ctx, 404, husband.Email)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("pairing with yourself", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		couples := mocks.NewCoupleStore(t)
		svc := NewCoupleService(couples, members, nil)

		members.On("GetByID", ctx, wife.ID).Return(wife, nil).Once()
		members.On("GetByEmail", ctx, wife.Email).Return(wife, nil).Once()

		_, err := svc.RegisterCouple(ctx, wife.ID, wife.Email)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("empty email", func(t *testing.T) {
		svc := NewCoupleService(mocks.NewCoupleStore(t), mocks.NewMemberStore(t), nil)

		_, err := svc.RegisterCouple(ctx, wife.ID, "  ")
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestCoupleService_ResolveSpouse(t *testing.T) {
	ctx := context.Background()
	couple := &models.Couple{ID: 9, WifeID: wife.ID, HusbandID: husband.ID}

	t.Run("symmetric", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		couples := mocks.NewCoupleStore(t)
		svc := NewCoupleService(couples, members, nil)

		members.On("GetByID", ctx, wife.ID).Return(wife, nil)
		members.On("GetByID", ctx, husband.ID).Return(husband, nil)
		couples.On("GetByWife", ctx, wife.ID).Return(couple, nil).Once()
		couples.On("GetByHusband", ctx, husband.ID).Return(couple, nil).Once()

		spouseOfWife, err := svc.ResolveSpouse(ctx, wife.ID)
		require.NoError(t, err)
		assert.Equal(t, husband.ID, spouseOfWife.ID)

		spouseOfHusband, err := svc.ResolveSpouse(ctx, husband.ID)
		require.NoError(t, err)
		assert.Equal(t, wife.ID, spouseOfHusband.ID)
	})

	t.Run("not paired", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		couples := mocks.NewCoupleStore(t)
		svc := NewCoupleService(couples, members, nil)

		members.On("GetByID", ctx, husband.ID).Return(husband, nil).Once()
		couples.On("GetByHusband", ctx, husband.ID).Return(nil, models.ErrNotPaired).Once()

		_, err := svc.ResolveSpouse(ctx, husband.ID)
		assert.ErrorIs(t, err, models.ErrNotPaired)
	})

	t.Run("unknown member", func(t *testing.T) {
		members := mocks.NewMemberStore(t)
		svc := NewCoupleService(mocks.NewCoupleStore(t), members, nil)

		members.On("GetByID", ctx, int64(404)).Return(nil, models.ErrNotFound).Once()

		_, err := svc.ResolveSpouse(ctx, 404)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("partner id", func(t *testing.T) {
		couples := mocks.NewCoupleStore(t)
		svc := NewCoupleService(couples, mocks.NewMemberStore(t), nil)

		couples.On("GetByMember", ctx, husband.ID).Return(couple, nil).Once()
		couples.On("GetByMember", ctx, int64(77)).Return(nil, models.ErrNotPaired).Once()

		assert.Equal(t, wife.ID, svc.PartnerID(ctx, husband.ID))
		assert.Equal(t, int64(0), svc.PartnerID(ctx, 77))
	})
}
