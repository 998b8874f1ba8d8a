package services

import (
	"context"
	"fmt"
	"strings"

	"couple-wellness-backend/internal/models"
)

// CounselService handles counseling session summaries
type CounselService struct {
	counselRepo CounselStore
}

// NewCounselService creates a new counsel service
func NewCounselService(counselRepo CounselStore) *CounselService {
	return &CounselService{counselRepo: counselRepo}
}

// CounselInput is the body of a new counsel record
type CounselInput struct {
	Summary string `json:"summary" validate:"required"`
	Tags    string `json:"tags"`
	Count   int    `json:"count" validate:"min=0"`
}

// Create stores a counsel record for the member
func (s *CounselService) Create(ctx context.Context, memberID int64, in CounselInput) (*models.CounselRecord, error) {
	in.Summary = strings.TrimSpace(in.Summary)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	record := &models.CounselRecord{
		MemberID: memberID,
		Summary:  in.Summary,
		Tags:     strings.TrimSpace(in.Tags),
		Count:    in.Count,
	}
	if err := s.counselRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns the member's counsel records
func (s *CounselService) List(ctx context.Context, memberID int64) ([]*models.CounselRecord, error) {
	return s.counselRepo.ListByMember(ctx, memberID)
}

// Get returns a counsel record owned by the member
func (s *CounselService) Get(ctx context.Context, memberID, recordID int64) (*models.CounselRecord, error) {
	record, err := s.counselRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.MemberID != memberID {
		return nil, fmt.Errorf("counsel record %d: %w", recordID, models.ErrNotFound)
	}
	return record, nil
}
