package dto

import "github.com/google/uuid"

type BreakdownResponse struct {
	Goals        float64 `json:"goals"`
	Lifestyle    float64 `json:"lifestyle"`
	Location     float64 `json:"location"`
	Demographics float64 `json:"demographics"`
	Personality  float64 `json:"personality"`
}

type CompatibilityResponse struct {
	ProfileID uuid.UUID         `json:"profile_id"`
	Score     int               `json:"score"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

type InvalidateResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
}
