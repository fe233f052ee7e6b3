package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchApproved  MatchStatus = "approved"
	MatchCompleted MatchStatus = "completed"
)

type MatchResult string

const (
	ResultWin  MatchResult = "win"
	ResultLoss MatchResult = "loss"
	ResultDraw MatchResult = "draw"
)

func ParseMatchResult(s string) (MatchResult, error) {
	switch MatchResult(s) {
	case ResultWin, ResultLoss, ResultDraw:
		return MatchResult(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// Match is a challenge between two members. Opponent is optional: an open
// challenge targets no specific opponent. Winner, when set, must reference
// the challenger or the opponent.
type Match struct {
	ID           uuid.UUID   `json:"id"`
	ChallengerID uuid.UUID   `json:"challenger"`
	OpponentID   *uuid.UUID  `json:"opponent,omitempty"`
	WeightClass  string      `json:"weightClass"`
	Date         time.Time   `json:"date"`
	Venue        string      `json:"venue,omitempty"`
	Status       MatchStatus `json:"status"`
	Result       MatchResult `json:"result,omitempty"`
	WinnerID     *uuid.UUID  `json:"winner,omitempty"`
	Referee      string      `json:"referee,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// WonBy reports whether the match is a recorded win for the given user.
func (m *Match) WonBy(userID uuid.UUID) bool {
	return m.Result == ResultWin && m.WinnerID != nil && *m.WinnerID == userID
}

// Involves reports whether the user is the challenger or the opponent.
func (m *Match) Involves(userID uuid.UUID) bool {
	if m.ChallengerID == userID {
		return true
	}
	return m.OpponentID != nil && *m.OpponentID == userID
}
