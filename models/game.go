package models

import "time"

// Game is a recorded result for a match. Games reference their tournament
// directly so a tournament deletion can cascade without walking matches.
type Game struct {
	ID           int64     `json:"id" db:"id"`
	TournamentID int64     `json:"tournament_id" db:"tournament_id"`
	MatchID      int64     `json:"match_id" db:"match_id"`
	Side1Score   int       `json:"side1_score" db:"side1_score"`
	Side2Score   int       `json:"side2_score" db:"side2_score"`
	RecordedBy   int64     `json:"recorded_by" db:"recorded_by"`
	RecordedAt   time.Time `json:"recorded_at" db:"recorded_at"`
}
