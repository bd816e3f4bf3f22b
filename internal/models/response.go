package models

type GapResponse struct {
	Success bool `json:"success"`
	GapReport
}

type AtsResponse struct {
	Success bool `json:"success"`
	AtsResult
}

type UsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}

type LinkedinResponse struct {
	Success  bool   `json:"success"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}
