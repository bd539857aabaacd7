// Package gameapi provides the request and response bodies of the game API.
package gameapi

import dmn "github.com/beka-birhanu/vinom-paradox/domain"

// DirectionRequest carries either a key name or a swipe displacement.
type DirectionRequest struct {
	Key string   `json:"key"`
	DX  *float64 `json:"dx"`
	DY  *float64 `json:"dy"`
}

// StartResponse is returned when a run starts.
type StartResponse struct {
	RunID string `json:"run_id"`
}

// ControlResponse reports whether a pause or resume changed the run.
type ControlResponse struct {
	Changed bool   `json:"changed"`
	Status  string `json:"status"`
}

// HighScoreResponse carries the best known score.
type HighScoreResponse struct {
	HighScore int `json:"high_score"`
}

// RunsResponse lists finished runs.
type RunsResponse struct {
	Runs []*dmn.Run `json:"runs"`
}

// DirectionResponse reports whether the input produced a heading.
type DirectionResponse struct {
	Accepted  bool   `json:"accepted"`
	Direction string `json:"direction,omitempty"`
}
