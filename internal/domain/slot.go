package domain

import "time"

type SlotType string

const (
	SlotTypePrivate   SlotType = "private"
	SlotTypeCommunity SlotType = "community"
)

// Valid reports whether t is a known slot type. The empty type is allowed,
// the field is optional.
func (t SlotType) Valid() bool {
	switch t {
	case "", SlotTypePrivate, SlotTypeCommunity:
		return true
	default:
		return false
	}
}

type BookedSlot struct {
	ID          string           `json:"_id"`
	BookBy      string           `json:"bookby"`
	SportName   string           `json:"sportName"`
	Branch      string           `json:"branch"`
	FullName    string           `json:"fullName"`
	PhNum       string           `json:"phNum"`
	AddFriend   []map[string]any `json:"addFriend"`
	Date        string           `json:"date"`
	Duration    string           `json:"duration"`
	TimeSlot    string           `json:"timeSlot"`
	Type        SlotType         `json:"type,omitempty"`
	TotalPlayer float64          `json:"totalPlayer"`
	Amount      float64          `json:"amount"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type BookSlotInput struct {
	BookBy      string
	SportName   string
	Branch      string
	FullName    string
	PhNum       string
	AddFriend   []map[string]any
	Date        string
	Duration    string
	TimeSlot    string
	Type        SlotType
	TotalPlayer float64
	Amount      float64
}
