package scheduling

import (
	"context"
	"fmt"

	"github.com/racketclub/club-system/models"
)

type EliminationGenerator struct{}

func NewEliminationGenerator() MatchGenerator {
	return &EliminationGenerator{}
}

func (g *EliminationGenerator) GetName() string {
	return "Elimination"
}

// GenerateMatches pairs the shuffled roster (singles) or randomly formed
// fixed teams (doubles) into round 1 matches. Only round 1 is produced:
// advancement into later rounds happens as results come in and is not part
// of schedule generation. An odd leftover entry is dropped from round 1.
func (g *EliminationGenerator) GenerateMatches(ctx context.Context, params GenerateParams) ([]*PlannedMatch, error) {
	roster := params.Roster
	format := models.FormatSingles
	if params.Tournament != nil {
		format = params.Tournament.Format
	}

	r := paramsRand(params)

	switch format {
	case models.FormatSingles:
		if len(roster) < 2 {
			return nil, fmt.Errorf("EliminationGenerator: not enough players (found %d, min 2 required)", len(roster))
		}
		players := shuffledCopy(r, roster)
		matches := make([]*PlannedMatch, 0, len(players)/2)
		for i := 0; i+1 < len(players); i += 2 {
			matches = append(matches, &PlannedMatch{
				Round:       1,
				MatchNumber: len(matches) + 1,
				Side1:       []models.PlayerID{players[i]},
				Side2:       []models.PlayerID{players[i+1]},
			})
		}
		return matches, nil

	case models.FormatDoubles:
		if len(roster) < 4 {
			return nil, fmt.Errorf("EliminationGenerator: not enough players for doubles (found %d, min 4 required)", len(roster))
		}
		if len(roster)%2 != 0 {
			return nil, fmt.Errorf("EliminationGenerator: doubles roster size must be even, got %d", len(roster))
		}

		// Teams are fixed for the whole tournament: shuffle once, partner
		// consecutive players, then shuffle the team list before pairing.
		players := shuffledCopy(r, roster)
		teams := make([][2]models.PlayerID, 0, len(players)/2)
		for i := 0; i+1 < len(players); i += 2 {
			teams = append(teams, [2]models.PlayerID{players[i], players[i+1]})
		}
		r.Shuffle(len(teams), func(i, j int) {
			teams[i], teams[j] = teams[j], teams[i]
		})

		matches := make([]*PlannedMatch, 0, len(teams)/2)
		for i := 0; i+1 < len(teams); i += 2 {
			matches = append(matches, &PlannedMatch{
				Round:       1,
				MatchNumber: len(matches) + 1,
				Side1:       []models.PlayerID{teams[i][0], teams[i][1]},
				Side2:       []models.PlayerID{teams[i+1][0], teams[i+1][1]},
			})
		}
		return matches, nil
	}

	return nil, fmt.Errorf("EliminationGenerator: unsupported format %q", format)
}
