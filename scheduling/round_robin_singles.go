package scheduling

import (
	"context"
	"fmt"

	"github.com/racketclub/club-system/models"
)

type SinglesRoundRobinGenerator struct{}

func NewSinglesRoundRobinGenerator() MatchGenerator {
	return &SinglesRoundRobinGenerator{}
}

func (g *SinglesRoundRobinGenerator) GetName() string {
	return "SinglesRoundRobin"
}

// GenerateMatches produces the full singles round robin: every unordered pair
// of the roster plays exactly once, n*(n-1)/2 matches in total, all in round 1.
// The roster is shuffled before pair enumeration and the match list is
// shuffled again afterwards; the first shuffle removes positional artifacts
// from the i<j enumeration, the second randomizes play order.
func (g *SinglesRoundRobinGenerator) GenerateMatches(ctx context.Context, params GenerateParams) ([]*PlannedMatch, error) {
	roster := params.Roster
	if len(roster) < 2 {
		return nil, fmt.Errorf("SinglesRoundRobinGenerator: not enough players (found %d, min 2 required)", len(roster))
	}

	r := paramsRand(params)
	players := shuffledCopy(r, roster)

	matches := make([]*PlannedMatch, 0, len(players)*(len(players)-1)/2)
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			matches = append(matches, &PlannedMatch{
				Round: 1,
				Side1: []models.PlayerID{players[i]},
				Side2: []models.PlayerID{players[j]},
			})
		}
	}

	r.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})
	for i, m := range matches {
		m.MatchNumber = i + 1
	}

	return matches, nil
}
