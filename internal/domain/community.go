package domain

import "time"

// Community is an open play session other members can join.
type Community struct {
	ID             string    `json:"_id"`
	Sport          string    `json:"sport"`
	Facility       string    `json:"facility"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	RequiredPlayer float64   `json:"requiredPlayer"`
	InstantJoin    bool      `json:"instantJoin"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateCommunityInput struct {
	Sport          string
	Facility       string
	Date           string
	Time           string
	RequiredPlayer float64
	InstantJoin    bool
}
