package models

import (
	"strings"
	"time"
)

// Gender is the canonical member gender code
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "W"
)

// ParseGender normalizes a gender code. "F" is accepted as an alias of "W".
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return GenderMale, nil
	case "W", "F":
		return GenderFemale, nil
	default:
		return "", ErrInvalidGender
	}
}

// Member represents an account holder
type Member struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Identification string    `json:"identification"`
	Gender         Gender    `json:"gender"`
	Age            *int      `json:"age,omitempty"`
	IsInfertility  bool      `json:"is_infertility"`
	PushToken      *string   `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Couple pairs two members in wife and husband slots
type Couple struct {
	ID        int64     `json:"id"`
	WifeID    int64     `json:"wife_id"`
	HusbandID int64     `json:"husband_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PartnerOf returns the other member of the couple, or 0 if memberID is not part of it
func (c *Couple) PartnerOf(memberID int64) int64 {
	switch memberID {
	case c.WifeID:
		return c.HusbandID
	case c.HusbandID:
		return c.WifeID
	default:
		return 0
	}
}

// EmotionScores is the six-dimension emotion vector
type EmotionScores struct {
	Joy      int `json:"joy"`
	Sadness  int `json:"sadness"`
	Anger    int `json:"anger"`
	Fear     int `json:"fear"`
	Surprise int `json:"surprise"`
	Disgust  int `json:"disgust"`
}

// StressScores is the five-category infertility stress vector
type StressScores struct {
	Social     int `json:"social"`
	Sexual     int `json:"sexual"`
	Relational int `json:"relational"`
	Refusing   int `json:"refusing"`
	Essential  int `json:"essential"`
}

// EmotionRecord is one emotion submission of a member
type EmotionRecord struct {
	ID              int64  `json:"id"`
	MemberID        int64  `json:"member_id"`
	MissionContent  string `json:"mission_content"`
	IsComplement    bool   `json:"is_complement"`
	InterestKeyword string `json:"interest_keyword"`
	SelfMessage     string `json:"self_message"`
	ExportMessage   string `json:"export_message"`
	EmotionScores
	Total int `json:"total"`
	StressScores
	CreatedAt time.Time `json:"created_at"`
}

// EmotionPatch carries a partial update; nil fields are left unchanged
type EmotionPatch struct {
	MissionContent  *string `json:"mission_content"`
	IsComplement    *bool   `json:"is_complement"`
	InterestKeyword *string `json:"interest_keyword"`
	SelfMessage     *string `json:"self_message"`
	ExportMessage   *string `json:"export_message"`
	Joy             *int    `json:"joy" validate:"omitempty,min=0"`
	Sadness         *int    `json:"sadness" validate:"omitempty,min=0"`
	Anger           *int    `json:"anger" validate:"omitempty,min=0"`
	Fear            *int    `json:"fear" validate:"omitempty,min=0"`
	Surprise        *int    `json:"surprise" validate:"omitempty,min=0"`
	Disgust         *int    `json:"disgust" validate:"omitempty,min=0"`
	Total           *int    `json:"total" validate:"omitempty,min=0"`
	Social          *int    `json:"social" validate:"omitempty,min=0"`
	Sexual          *int    `json:"sexual" validate:"omitempty,min=0"`
	Relational      *int    `json:"relational" validate:"omitempty,min=0"`
	Refusing        *int    `json:"refusing" validate:"omitempty,min=0"`
	Essential       *int    `json:"essential" validate:"omitempty,min=0"`
}

// Apply copies the set fields of p onto r
func (p *EmotionPatch) Apply(r *EmotionRecord) {
	setString(&r.MissionContent, p.MissionContent)
	setString(&r.InterestKeyword, p.InterestKeyword)
	setString(&r.SelfMessage, p.SelfMessage)
	setString(&r.ExportMessage, p.ExportMessage)
	if p.IsComplement != nil {
		r.IsComplement = *p.IsComplement
	}
	setInt(&r.Joy, p.Joy)
	setInt(&r.Sadness, p.Sadness)
	setInt(&r.Anger, p.Anger)
	setInt(&r.Fear, p.Fear)
	setInt(&r.Surprise, p.Surprise)
	setInt(&r.Disgust, p.Disgust)
	setInt(&r.Total, p.Total)
	setInt(&r.Social, p.Social)
	setInt(&r.Sexual, p.Sexual)
	setInt(&r.Relational, p.Relational)
	setInt(&r.Refusing, p.Refusing)
	setInt(&r.Essential, p.Essential)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// MissionFlag is the projection of an emotion record used by the weekly view
type MissionFlag struct {
	IsComplement bool
	CreatedAt    time.Time
}

// Interest is a keyword set recorded for a member
type Interest struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	EmotionID *int64    `json:"emotion_id,omitempty"`
	Interests string    `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

// InfertilityTest is one infertility stress assessment
type InfertilityTest struct {
	ID       int64 `json:"id"`
	MemberID int64 `json:"member_id"`
	Total    int   `json:"total"`
	StressScores
	Beliefs   *string   `json:"beliefs"`
	CreatedAt time.Time `json:"created_at"`
}

// CounselRecord summarizes one counseling session
type CounselRecord struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	Summary   string    `json:"summary"`
	Tags      string    `json:"tags"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
