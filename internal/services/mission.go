package services

import (
	"context"
	"time"

	"couple-wellness-backend/internal/mission"
	"couple-wellness-backend/internal/models"
)

// SpouseResolver finds the member paired with another member
type SpouseResolver interface {
	ResolveSpouse(ctx context.Context, memberID int64) (*models.Member, error)
}

// MissionService builds the weekly mission view of a couple
type MissionService struct {
	couples     SpouseResolver
	emotionRepo EmotionStore
	loc         *time.Location
}

// NewMissionService creates a new mission service. Days are assigned in loc.
func NewMissionService(couples SpouseResolver, emotionRepo EmotionStore, loc *time.Location) *MissionService {
	if loc == nil {
		loc = time.UTC
	}
	return &MissionService{
		couples:     couples,
		emotionRepo: emotionRepo,
		loc:         loc,
	}
}

// WeeklyStatus holds the member's and spouse's completion flags for one week
type WeeklyStatus struct {
	MemberID  int64        `json:"memberId"`
	SpouseID  int64        `json:"spouseId"`
	WeekStart string       `json:"weekStart"`
	WeekEnd   string       `json:"weekEnd"`
	Member    mission.Week `json:"member"`
	Spouse    mission.Week `json:"spouse"`
}

// GetWeeklyMissionStatus buckets the mission flags of the member and their spouse by
// day of week over the Sunday-first week containing ref.
func (s *MissionService) GetWeeklyMissionStatus(ctx context.Context, memberID int64, ref time.Time) (*WeeklyStatus, error) {
	spouse, err := s.couples.ResolveSpouse(ctx, memberID)
	if err != nil {
		return nil, err
	}

	start, end := mission.Window(ref.In(s.loc))

	memberWeek, err := s.week(ctx, memberID, start, end)
	if err != nil {
		return nil, err
	}
	spouseWeek, err := s.week(ctx, spouse.ID, start, end)
	if err != nil {
		return nil, err
	}

	return &WeeklyStatus{
		MemberID:  memberID,
		SpouseID:  spouse.ID,
		WeekStart: start.Format("2006-01-02"),
		WeekEnd:   end.Format("2006-01-02"),
		Member:    memberWeek,
		Spouse:    spouseWeek,
	}, nil
}

func (s *MissionService) week(ctx context.Context, memberID int64, start, end time.Time) (mission.Week, error) {
	flags, err := s.emotionRepo.ListMissionFlags(ctx, memberID, start, end)
	if err != nil {
		return nil, err
	}

	week := mission.NewWeek()
	for _, f := range flags {
		ts := f.CreatedAt.In(s.loc)
		if ts.Before(start) || ts.After(end) {
			continue
		}
		week.Add(f.IsComplement, ts)
	}
	return week, nil
}
