package scheduling

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/racketclub/club-system/models"
)

// GenerateParams carries everything a generator needs. Rand is optional; when
// nil the generator seeds its own source. Tests inject a seeded *rand.Rand to
// get reproducible schedules.
type GenerateParams struct {
	Tournament *models.Tournament
	Roster     []models.PlayerID
	Rand       *rand.Rand
	Weights    *ScoreWeights
}

// PlannedMatch is a match as produced by a generator, before persistence.
type PlannedMatch struct {
	Round       int
	MatchNumber int
	Side1       []models.PlayerID
	Side2       []models.PlayerID
}

type MatchGenerator interface {
	GenerateMatches(ctx context.Context, params GenerateParams) ([]*PlannedMatch, error)

	GetName() string
}

// ForTournament selects the generator for a (type, format) combination.
func ForTournament(tournamentType models.TournamentType, format models.Format) (MatchGenerator, error) {
	switch tournamentType {
	case models.TypeRoundRobin:
		switch format {
		case models.FormatSingles:
			return NewSinglesRoundRobinGenerator(), nil
		case models.FormatDoubles:
			return NewDoublesRoundRobinGenerator(), nil
		}
	case models.TypeSingleElimination, models.TypeDoubleElimination:
		if format.Valid() {
			return NewEliminationGenerator(), nil
		}
	}
	return nil, fmt.Errorf("no generator for type %q with format %q", tournamentType, format)
}

func paramsRand(params GenerateParams) *rand.Rand {
	if params.Rand != nil {
		return params.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func paramsWeights(params GenerateParams) ScoreWeights {
	if params.Weights != nil {
		return *params.Weights
	}
	return DefaultScoreWeights
}

// shuffledCopy returns a fresh Fisher-Yates shuffle of players, leaving the
// input untouched.
func shuffledCopy(r *rand.Rand, players []models.PlayerID) []models.PlayerID {
	out := make([]models.PlayerID, len(players))
	copy(out, players)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
