package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"couple-wellness-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// CoupleService maintains the wife/husband pairing between members
type CoupleService struct {
	coupleRepo CoupleStore
	memberRepo MemberStore
	notifier   Notifier
}

// NewCoupleService creates a new couple service. notifier may be nil.
func NewCoupleService(coupleRepo CoupleStore, memberRepo MemberStore, notifier Notifier) *CoupleService {
	return &CoupleService{
		coupleRepo: coupleRepo,
		memberRepo: memberRepo,
		notifier:   notifier,
	}
}

// RegisterCouple pairs the requesting member with the member registered under spouseEmail.
// The requester's gender decides the slots: W takes the wife slot, M the husband slot.
// The spouse must have the other gender.
func (s *CoupleService) RegisterCouple(ctx context.Context, requesterID int64, spouseEmail string) (*models.Couple, error) {
	spouseEmail = strings.TrimSpace(strings.ToLower(spouseEmail))
	if spouseEmail == "" {
		return nil, models.NewValidationError("spouseEmail", "is required")
	}

	requester, err := s.memberRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("requesting member: %w", err)
	}

	spouse, err := s.memberRepo.GetByEmail(ctx, spouseEmail)
	if err != nil {
		return nil, fmt.Errorf("spouse: %w", err)
	}

	if requester.ID == spouse.ID {
		return nil, models.NewValidationError("spouseEmail", "cannot pair with yourself")
	}

	var wifeID, husbandID int64
	switch requester.Gender {
	case models.GenderFemale:
		wifeID, husbandID = requester.ID, spouse.ID
	case models.GenderMale:
		wifeID, husbandID = spouse.ID, requester.ID
	default:
		return nil, models.ErrInvalidGender
	}

	// each member must land in the slot their own gender implies, or ResolveSpouse cannot find them
	if spouse.Gender == requester.Gender || (spouse.Gender != models.GenderFemale && spouse.Gender != models.GenderMale) {
		return nil, fmt.Errorf("spouse %d has gender %q: %w", spouse.ID, spouse.Gender, models.ErrInvalidGender)
	}

	couple, err := s.coupleRepo.CreateExclusive(ctx, wifeID, husbandID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("couple_id", couple.ID).
		Int64("wife_id", couple.WifeID).
		Int64("husband_id", couple.HusbandID).
		Msg("Couple registered")

	if s.notifier != nil {
		s.notifier.CoupleCreated(ctx, couple, requester, spouse)
	}

	return couple, nil
}

// ResolveSpouse returns the member paired with memberID.
// It fails with models.ErrNotPaired when the member has no couple in the slot their gender implies.
func (s *CoupleService) ResolveSpouse(ctx context.Context, memberID int64) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	var spouseID int64
	switch member.Gender {
	case models.GenderFemale:
		couple, err := s.coupleRepo.GetByWife(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		spouseID = couple.HusbandID
	case models.GenderMale:
		couple, err := s.coupleRepo.GetByHusband(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		spouseID = couple.WifeID
	default:
		return nil, models.ErrInvalidGender
	}

	spouse, err := s.memberRepo.GetByID(ctx, spouseID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("spouse %d: %w", spouseID, models.ErrNotPaired)
		}
		return nil, err
	}
	return spouse, nil
}

// GetCouple retrieves the couple a member belongs to, in either slot
func (s *CoupleService) GetCouple(ctx context.Context, memberID int64) (*models.Couple, error) {
	return s.coupleRepo.GetByMember(ctx, memberID)
}

// PartnerID returns the id of the member's partner, or 0 when unpaired
func (s *CoupleService) PartnerID(ctx context.Context, memberID int64) int64 {
	couple, err := s.coupleRepo.GetByMember(ctx, memberID)
	if err != nil {
		return 0
	}
	return couple.PartnerOf(memberID)
}
