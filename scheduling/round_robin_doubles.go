package scheduling

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/racketclub/club-system/models"
)

type DoublesRoundRobinGenerator struct{}

func NewDoublesRoundRobinGenerator() MatchGenerator {
	return &DoublesRoundRobinGenerator{}
}

func (g *DoublesRoundRobinGenerator) GetName() string {
	return "DoublesRoundRobin"
}

// GenerateMatches schedules a doubles round robin. Without a round cap it
// builds the full partner rotation (every pair partners exactly once); with
// Tournament.MaxRounds set it runs the round-by-round greedy scheduler bounded
// by rounds and available courts.
func (g *DoublesRoundRobinGenerator) GenerateMatches(ctx context.Context, params GenerateParams) ([]*PlannedMatch, error) {
	roster := params.Roster
	if len(roster) < 4 {
		return nil, fmt.Errorf("DoublesRoundRobinGenerator: not enough players (found %d, min 4 required)", len(roster))
	}
	if len(roster)%2 != 0 {
		return nil, fmt.Errorf("DoublesRoundRobinGenerator: roster size must be even, got %d", len(roster))
	}

	r := paramsRand(params)

	t := params.Tournament
	if t != nil && t.MaxRounds != nil {
		courts := 1
		if t.AvailableCourts > 0 {
			courts = t.AvailableCourts
		}
		return g.generateBounded(r, roster, *t.MaxRounds, courts, paramsWeights(params)), nil
	}
	return g.generateFullRotation(r, roster), nil
}

// partnership is a fixed pair of teammates during full-rotation scheduling.
type partnership struct {
	a, b models.PlayerID
}

func (p partnership) shares(q partnership) bool {
	return p.a == q.a || p.a == q.b || p.b == q.a || p.b == q.b
}

// generateFullRotation pairs every unordered partnership exactly once and
// matches it against the available opposing partnership whose members most
// need games. Each player plays up to n-1 games. Some partnerships can stay
// unscheduled when parity makes a perfect rotation impossible; the partial
// schedule is returned as-is, that is an accepted outcome.
func (g *DoublesRoundRobinGenerator) generateFullRotation(r *rand.Rand, roster []models.PlayerID) []*PlannedMatch {
	players := shuffledCopy(r, roster)
	n := len(players)

	pairs := make([]partnership, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, partnership{a: players[i], b: players[j]})
		}
	}
	r.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	gameLimit := n - 1
	gamesPlayed := make(map[models.PlayerID]int, n)
	used := make([]bool, len(pairs))

	var matches []*PlannedMatch
	for i, p := range pairs {
		if used[i] || gamesPlayed[p.a] >= gameLimit || gamesPlayed[p.b] >= gameLimit {
			continue
		}

		// Prefer the opponent pair whose four players have the most games
		// left in their quota.
		bestIdx := -1
		bestNeed := -1
		for j, q := range pairs {
			if j == i || used[j] || p.shares(q) {
				continue
			}
			if gamesPlayed[q.a] >= gameLimit || gamesPlayed[q.b] >= gameLimit {
				continue
			}
			need := (gameLimit - gamesPlayed[p.a]) + (gameLimit - gamesPlayed[p.b]) +
				(gameLimit - gamesPlayed[q.a]) + (gameLimit - gamesPlayed[q.b])
			if need > bestNeed {
				bestNeed = need
				bestIdx = j
			}
		}
		if bestIdx < 0 {
			continue
		}

		q := pairs[bestIdx]
		used[i] = true
		used[bestIdx] = true
		matches = append(matches, &PlannedMatch{
			Side1: []models.PlayerID{p.a, p.b},
			Side2: []models.PlayerID{q.a, q.b},
		})
		gamesPlayed[p.a]++
		gamesPlayed[p.b]++
		gamesPlayed[q.a]++
		gamesPlayed[q.b]++
	}

	// Group into rounds of n/4 matches in commit order.
	matchesPerRound := n / 4
	for i, m := range matches {
		m.Round = i/matchesPerRound + 1
		m.MatchNumber = i + 1
	}
	return matches
}

// generateBounded fills exactly maxRounds rounds, up to min(n/4, courts)
// matches per round, picking each court's match by exhaustive search over all
// 4-player combinations of the players still free this round and all three
// team splits of each combination, scored against the fairness tracker.
// The tracker is updated once per round, after the round's courts are filled.
// The combination search is O(k^4) in the free-player count; rosters are tens
// of players and generation is offline, so that is fine.
func (g *DoublesRoundRobinGenerator) generateBounded(r *rand.Rand, roster []models.PlayerID, maxRounds, courts int, weights ScoreWeights) []*PlannedMatch {
	n := len(roster)
	courtsPerRound := n / 4
	if courts < courtsPerRound {
		courtsPerRound = courts
	}

	tracker := NewFairnessTracker()
	var matches []*PlannedMatch
	matchNumber := 0

	for round := 1; round <= maxRounds; round++ {
		pool := shuffledCopy(r, roster)
		usedThisRound := make(map[models.PlayerID]bool, n)
		var roundMatches []*PlannedMatch

		for court := 0; court < courtsPerRound; court++ {
			available := make([]models.PlayerID, 0, n)
			for _, p := range pool {
				if !usedThisRound[p] {
					available = append(available, p)
				}
			}
			if len(available) < 4 {
				break
			}
			r.Shuffle(len(available), func(i, j int) {
				available[i], available[j] = available[j], available[i]
			})

			team1, team2 := bestSplit(available, tracker, weights)

			matchNumber++
			roundMatches = append(roundMatches, &PlannedMatch{
				Round:       round,
				MatchNumber: matchNumber,
				Side1:       []models.PlayerID{team1[0], team1[1]},
				Side2:       []models.PlayerID{team2[0], team2[1]},
			})
			usedThisRound[team1[0]] = true
			usedThisRound[team1[1]] = true
			usedThisRound[team2[0]] = true
			usedThisRound[team2[1]] = true
		}

		for _, m := range roundMatches {
			tracker.RecordMatch(m.Side1, m.Side2)
		}
		matches = append(matches, roundMatches...)
	}

	return matches
}

// bestSplit scans every 4-combination of the available players and every one
// of the three ways to split four players into two teams, returning the
// highest-scoring split. available must hold at least 4 players.
func bestSplit(available []models.PlayerID, tracker *FairnessTracker, weights ScoreWeights) (team1, team2 [2]models.PlayerID) {
	first := true
	bestScore := 0

	consider := func(t1, t2 [2]models.PlayerID) {
		s := weights.ScoreSplit(t1, t2, tracker)
		if first || s > bestScore {
			first = false
			bestScore = s
			team1, team2 = t1, t2
		}
	}

	for a := 0; a < len(available); a++ {
		for b := a + 1; b < len(available); b++ {
			for c := b + 1; c < len(available); c++ {
				for d := c + 1; d < len(available); d++ {
					p0, p1, p2, p3 := available[a], available[b], available[c], available[d]
					consider([2]models.PlayerID{p0, p1}, [2]models.PlayerID{p2, p3})
					consider([2]models.PlayerID{p0, p2}, [2]models.PlayerID{p1, p3})
					consider([2]models.PlayerID{p0, p3}, [2]models.PlayerID{p1, p2})
				}
			}
		}
	}
	return team1, team2
}
