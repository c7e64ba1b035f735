package dto

import (
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
)

type UserResponse struct {
	ID             string `json:"_id"`
	FullName       string `json:"fullName,omitempty"`
	Email          string `json:"email,omitempty"`
	PhNum          string `json:"phNum,omitempty"`
	DOB            string `json:"dob,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	Pincode        string `json:"pincode,omitempty"`
	SelectBranch   string `json:"selectBranch,omitempty"`
	MembershipPlan string `json:"membershipPlan,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type BookedSlotResponse struct {
	ID          string           `json:"_id"`
	BookBy      string           `json:"bookby,omitempty"`
	SportName   string           `json:"sportName,omitempty"`
	Branch      string           `json:"branch,omitempty"`
	FullName    string           `json:"fullName,omitempty"`
	PhNum       string           `json:"phNum,omitempty"`
	AddFriend   []map[string]any `json:"addFriend"`
	Date        string           `json:"date,omitempty"`
	Duration    string           `json:"duration,omitempty"`
	TimeSlot    string           `json:"timeSlot,omitempty"`
	Type        string           `json:"type,omitempty"`
	TotalPlayer float64          `json:"totalPlayer"`
	Amount      float64          `json:"amount"`
	CreatedAt   string           `json:"createdAt"`
}

type CommunityResponse struct {
	ID             string  `json:"_id"`
	Sport          string  `json:"sport,omitempty"`
	Facility       string  `json:"facility,omitempty"`
	Date           string  `json:"date,omitempty"`
	Time           string  `json:"time,omitempty"`
	RequiredPlayer float64 `json:"requiredPlayer"`
	InstantJoin    bool    `json:"instantJoin"`
	CreatedAt      string  `json:"createdAt"`
}

type SportResponse struct {
	ID           string `json:"_id"`
	SportName    string `json:"sportName,omitempty"`
	CategoryType string `json:"categoryType,omitempty"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// DataResponse wraps a created record.
type DataResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		PhNum:          u.PhNum,
		DOB:            u.DOB,
		Address:        u.Address,
		City:           u.City,
		Pincode:        u.Pincode,
		SelectBranch:   u.SelectBranch,
		MembershipPlan: u.MembershipPlan,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookedSlotResponse(s *domain.BookedSlot) BookedSlotResponse {
	friends := s.AddFriend
	if friends == nil {
		friends = []map[string]any{}
	}

	return BookedSlotResponse{
		ID:          s.ID,
		BookBy:      s.BookBy,
		SportName:   s.SportName,
		Branch:      s.Branch,
		FullName:    s.FullName,
		PhNum:       s.PhNum,
		AddFriend:   friends,
		Date:        s.Date,
		Duration:    s.Duration,
		TimeSlot:    s.TimeSlot,
		Type:        string(s.Type),
		TotalPlayer: s.TotalPlayer,
		Amount:      s.Amount,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func ToCommunityResponse(c *domain.Community) CommunityResponse {
	return CommunityResponse{
		ID:             c.ID,
		Sport:          c.Sport,
		Facility:       c.Facility,
		Date:           c.Date,
		Time:           c.Time,
		RequiredPlayer: c.RequiredPlayer,
		InstantJoin:    c.InstantJoin,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func ToSportResponse(s *domain.Sport) SportResponse {
	return SportResponse{
		ID:           s.ID,
		SportName:    s.SportName,
		CategoryType: s.CategoryType,
		Description:  s.Description,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}

// ToList maps records with conv and never returns nil, so empty lists encode as [].
func ToList[T any, R any](items []*T, conv func(*T) R) []R {
	resp := make([]R, 0, len(items))
	for _, it := range items {
		resp = append(resp, conv(it))
	}
	return resp
}
