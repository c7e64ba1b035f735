package domain

import "time"

type Sport struct {
	ID           string    `json:"_id"`
	SportName    string    `json:"sportName"`
	CategoryType string    `json:"categoryType"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateSportInput struct {
	SportName    string
	CategoryType string
	Description  string
	Status       string
}
