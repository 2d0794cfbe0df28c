package models

import "time"

type MatchStatus string

const (
	MatchStatusPending    MatchStatus = "pending"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusCanceled   MatchStatus = "canceled"
)

// Match is one scheduled encounter inside a tournament. Side1 and Side2 hold
// one player each for singles, two for doubles; the same player never appears
// on both sides. MatchNumber is unique within a tournament, assigned in
// generation order.
type Match struct {
	ID           int64       `json:"id" db:"id"`
	TournamentID int64       `json:"tournament_id" db:"tournament_id"`
	Round        int         `json:"round" db:"round"`
	MatchNumber  int         `json:"match_number" db:"match_number"`
	Side1        []PlayerID  `json:"side1" db:"side1"`
	Side2        []PlayerID  `json:"side2" db:"side2"`
	Status       MatchStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}
