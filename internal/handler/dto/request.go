package dto

import "github.com/amu0701/aman-khelkud-backend-main/internal/domain"

// RegisterUserRequest has no binding rules: a missing phone number is
// reported by the service with its own message.
type RegisterUserRequest struct {
	FullName string `json:"fullName"`
	PhNum    Text   `json:"phNum"`
}

type LoginRequest struct {
	PhNum Text `json:"phNum"`
}

type AddUserRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	PhNum          Text   `json:"phNum"`
	DOB            string `json:"dob"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Pincode        Text   `json:"pincode"`
	SelectBranch   string `json:"selectBranch"`
	MembershipPlan string `json:"membershipPlan"`
}

func (r AddUserRequest) ToInput() domain.CreateUserInput {
	return domain.CreateUserInput{
		FullName:       r.FullName,
		Email:          r.Email,
		PhNum:          string(r.PhNum),
		DOB:            r.DOB,
		Address:        r.Address,
		City:           r.City,
		Pincode:        string(r.Pincode),
		SelectBranch:   r.SelectBranch,
		MembershipPlan: r.MembershipPlan,
	}
}

type BookSlotRequest struct {
	BookBy      string           `json:"bookby"`
	SportName   string           `json:"sportName"`
	Branch      string           `json:"branch"`
	FullName    string           `json:"fullName"`
	PhNum       Text             `json:"phNum"`
	AddFriend   []map[string]any `json:"addFriend"`
	Date        string           `json:"date"`
	Duration    string           `json:"duration"`
	TimeSlot    string           `json:"timeSlot"`
	Type        string           `json:"type"`
	TotalPlayer Number           `json:"totalPlayer"`
	Amount      Number           `json:"amount"`
}

func (r BookSlotRequest) ToInput() domain.BookSlotInput {
	return domain.BookSlotInput{
		BookBy:      r.BookBy,
		SportName:   r.SportName,
		Branch:      r.Branch,
		FullName:    r.FullName,
		PhNum:       string(r.PhNum),
		AddFriend:   r.AddFriend,
		Date:        r.Date,
		Duration:    r.Duration,
		TimeSlot:    r.TimeSlot,
		Type:        domain.SlotType(r.Type),
		TotalPlayer: float64(r.TotalPlayer),
		Amount:      float64(r.Amount),
	}
}

type CreateCommunityRequest struct {
	Sport          string  `json:"sport"`
	Facility       string  `json:"facility"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	RequiredPlayer Number  `json:"requiredPlayer"`
	InstantJoin    bool    `json:"instantJoin"`
}

func (r CreateCommunityRequest) ToInput() domain.CreateCommunityInput {
	return domain.CreateCommunityInput{
		Sport:          r.Sport,
		Facility:       r.Facility,
		Date:           r.Date,
		Time:           r.Time,
		RequiredPlayer: float64(r.RequiredPlayer),
		InstantJoin:    r.InstantJoin,
	}
}

type AddSportRequest struct {
	SportName    string `json:"sportName"`
	CategoryType string `json:"categoryType"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

func (r AddSportRequest) ToInput() domain.CreateSportInput {
	return domain.CreateSportInput{
		SportName:    r.SportName,
		CategoryType: r.CategoryType,
		Description:  r.Description,
		Status:       r.Status,
	}
}
