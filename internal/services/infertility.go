package services

import (
	"context"
	"errors"
	"fmt"

	"couple-wellness-backend/internal/models"
)

// InfertilityService handles infertility stress assessments
type InfertilityService struct {
	testRepo InfertilityStore
}

// NewInfertilityService creates a new infertility test service
func NewInfertilityService(testRepo InfertilityStore) *InfertilityService {
	return &InfertilityService{testRepo: testRepo}
}

// InfertilityInput is the body of a new assessment
type InfertilityInput struct {
	Total      int     `json:"total" validate:"min=0"`
	Social     int     `json:"social" validate:"min=0"`
	Sexual     int     `json:"sexual" validate:"min=0"`
	Relational int     `json:"relational" validate:"min=0"`
	Refusing   int     `json:"refusing" validate:"min=0"`
	Essential  int     `json:"essential" validate:"min=0"`
	Beliefs    *string `json:"beliefs"`
}

// InfertilityDetail pairs a test with the one the member took before it
type InfertilityDetail struct {
	Current *models.InfertilityTest
	Before  *models.InfertilityTest
}

// Create stores a new assessment for the member
func (s *InfertilityService) Create(ctx context.Context, memberID int64, in InfertilityInput) (*models.InfertilityTest, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	test := &models.InfertilityTest{
		MemberID: memberID,
		Total:    in.Total,
		StressScores: models.StressScores{
			Social:     in.Social,
			Sexual:     in.Sexual,
			Relational: in.Relational,
			Refusing:   in.Refusing,
			Essential:  in.Essential,
		},
		Beliefs: in.Beliefs,
	}
	if err := s.testRepo.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// List returns the member's assessments, newest first
func (s *InfertilityService) List(ctx context.Context, memberID int64) ([]*models.InfertilityTest, error) {
	return s.testRepo.ListByMember(ctx, memberID)
}

// Detail returns a test owned by the member and the test before it, if any
func (s *InfertilityService) Detail(ctx context.Context, memberID, testID int64) (*InfertilityDetail, error) {
	current, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if current.MemberID != memberID {
		return nil, fmt.Errorf("infertility test %d: %w", testID, models.ErrNotFound)
	}

	before, err := s.testRepo.Previous(ctx, current)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		before = nil
	}

	return &InfertilityDetail{Current: current, Before: before}, nil
}
