package dto

import "github.com/google/uuid"

type FeedItemResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Age       int       `json:"age"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Score     int       `json:"score"`
}

type FeedResponse struct {
	Items []FeedItemResponse `json:"items"`
	Count int                `json:"count"`
}

type PrewarmResponse struct {
	Computed int `json:"computed"`
}
