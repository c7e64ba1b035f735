package domain

import "time"

type User struct {
	ID             string    `json:"_id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	PhNum          string    `json:"phNum"`
	DOB            string    `json:"dob"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Pincode        string    `json:"pincode"`
	SelectBranch   string    `json:"selectBranch"`
	MembershipPlan string    `json:"membershipPlan"`
	CreatedAt      time.Time `json:"createdAt"`
}

type RegisterUserInput struct {
	FullName string
	PhNum    string
}

// CreateUserInput is the full user shape accepted by the admin add path.
// Phone uniqueness is not checked there.
type CreateUserInput struct {
	FullName       string
	Email          string
	PhNum          string
	DOB            string
	Address        string
	City           string
	Pincode        string
	SelectBranch   string
	MembershipPlan string
}
