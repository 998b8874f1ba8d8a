package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"couple-wellness-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemberService handles signup, login and token issuance
type MemberService struct {
	memberRepo MemberStore
	jwtSecret  string
	jwtExpiry  time.Duration
	now        func() time.Time
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo MemberStore, jwtSecret string, jwtExpDays int) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		jwtSecret:  jwtSecret,
		jwtExpiry:  time.Duration(jwtExpDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// SignupInput is the signup request body
type SignupInput struct {
	Username       string `json:"username" validate:"required,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	Identification string `json:"identification" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	Age            *int   `json:"age" validate:"omitempty,min=0,max=150"`
	IsInfertility  bool   `json:"is_infertility"`
}

// LoginResult is returned after successful authentication
type LoginResult struct {
	Email    string        `json:"email"`
	MemberID int64         `json:"memberId"`
	Gender   models.Gender `json:"gender"`
	Token    string        `json:"token"`
}

// Signup validates input, hashes the password and stores a new member
func (s *MemberService) Signup(ctx context.Context, in SignupInput) (*models.Member, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Identification = strings.TrimSpace(in.Identification)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	gender, err := models.ParseGender(in.Gender)
	if err != nil {
		return nil, err
	}

	exists, err := s.memberRepo.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("email", "is already registered")
	}

	exists, err = s.memberRepo.IdentificationExists(ctx, in.Identification)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("identification", "is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.Member{
		Username:       in.Username,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Identification: in.Identification,
		Gender:         gender,
		Age:            in.Age,
		IsInfertility:  in.IsInfertility,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

// Login verifies credentials and issues a JWT
func (s *MemberService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, models.ErrAuthFailure
	}

	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrAuthFailure
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrAuthFailure
	}

	token, err := s.GenerateJWT(member.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Email:    member.Email,
		MemberID: member.ID,
		Gender:   member.Gender,
		Token:    token,
	}, nil
}

// GenerateJWT generates a JWT token for a member
func (s *MemberService) GenerateJWT(memberID int64) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"member_id": memberID,
		"jti":       uuid.NewString(),
		"exp":       now.Add(s.jwtExpiry).Unix(),
		"iat":       now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a JWT token and returns the member ID
func (s *MemberService) ValidateJWT(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	// numeric claims decode as float64
	id, ok := claims["member_id"].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("member_id not found in token")
	}

	return int64(id), nil
}

// GetMember retrieves a member by ID
func (s *MemberService) GetMember(ctx context.Context, memberID int64) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, memberID)
}

// UpdatePushToken stores the device token used for push notifications. Empty clears it.
func (s *MemberService) UpdatePushToken(ctx context.Context, memberID int64, pushToken string) error {
	pushToken = strings.TrimSpace(pushToken)
	var token *string
	if pushToken != "" {
		token = &pushToken
	}
	return s.memberRepo.UpdatePushToken(ctx, memberID, token)
}
