package models

import "time"

// Format determines how many players stand on each side of a match.
type Format string

const (
	FormatSingles Format = "singles"
	FormatDoubles Format = "doubles"
)

func (f Format) Valid() bool {
	return f == FormatSingles || f == FormatDoubles
}

// PlayersPerSide returns 1 for singles and 2 for doubles.
func (f Format) PlayersPerSide() int {
	if f == FormatDoubles {
		return 2
	}
	return 1
}

type TournamentType string

const (
	TypeRoundRobin        TournamentType = "round_robin"
	TypeSingleElimination TournamentType = "single_elimination"
	TypeDoubleElimination TournamentType = "double_elimination"
)

func (t TournamentType) Valid() bool {
	switch t {
	case TypeRoundRobin, TypeSingleElimination, TypeDoubleElimination:
		return true
	}
	return false
}

// TournamentStatus представляет статусы турнира, соответствующие ENUM в БД.
type TournamentStatus string

const (
	StatusScheduled TournamentStatus = "scheduled"
	StatusActive    TournamentStatus = "active"
	StatusCompleted TournamentStatus = "completed"
	StatusCanceled  TournamentStatus = "canceled"
)

// Tournament представляет турнир.
type Tournament struct {
	ID                       int64            `json:"id" db:"id"`
	Name                     string           `json:"name" db:"name"`
	Description              *string          `json:"description,omitempty" db:"description"`
	Format                   Format           `json:"format" db:"format"`
	Type                     TournamentType   `json:"type" db:"type"`
	Status                   TournamentStatus `json:"status" db:"status"`
	Roster                   []PlayerID       `json:"roster" db:"roster"`
	AvailableCourts          int              `json:"available_courts" db:"available_courts"`
	MaxRounds                *int             `json:"max_rounds,omitempty" db:"max_rounds"`
	EstimatedDurationMinutes int              `json:"estimated_duration_minutes" db:"estimated_duration_minutes"`
	CreatedBy                int64            `json:"created_by" db:"created_by"`
	CreatedAt                time.Time        `json:"created_at" db:"created_at"`
	PosterKey                *string          `json:"-" db:"poster_key"`
	PosterURL                *string          `json:"poster_url,omitempty" db:"-"`

	// Опциональные связанные сущности (не мапятся напрямую)
	Matches []Match `json:"matches,omitempty" db:"-"`
	Games   []Game  `json:"games,omitempty" db:"-"`
}
