package api

import "github.com/shohagvaii216/FinTrack/internal/models"

type UnlockRequest struct {
	PIN string `json:"pin"`
}

type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type SetPINRequest struct {
	PIN string `json:"pin"`
}

// SetPINResponse returns a fresh session so the caller stays unlocked.
type SetPINResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type DisablePINRequest struct {
	PIN string `json:"pin"`
}

type DisablePINResponse struct{}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile models.Profile `json:"profile"`
}

type UpdateProfileRequest struct {
	Profile models.Profile `json:"profile"`
}

type UpdateProfileResponse struct {
	Profile models.Profile `json:"profile"`
}
