package scheduling

import (
	"context"
	"math/rand"
	"testing"

	"github.com/racketclub/club-system/models"
)

func testRoster(n int) []models.PlayerID {
	roster := make([]models.PlayerID, n)
	for i := range roster {
		roster[i] = models.PlayerID(i + 1)
	}
	return roster
}

func intPtr(v int) *int { return &v }

func TestSinglesRoundRobinProperties(t *testing.T) {
	gen := NewSinglesRoundRobinGenerator()

	for n := 2; n <= 9; n++ {
		for seed := int64(0); seed < 5; seed++ {
			roster := testRoster(n)
			matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
				Roster: roster,
				Rand:   rand.New(rand.NewSource(seed)),
			})
			if err != nil {
				t.Fatalf("n=%d seed=%d: %v", n, seed, err)
			}

			wantMatches := n * (n - 1) / 2
			if len(matches) != wantMatches {
				t.Fatalf("n=%d: got %d matches, want %d", n, len(matches), wantMatches)
			}

			appearances := make(map[models.PlayerID]int)
			seenPairs := make(map[pairKey]bool)
			seenNumbers := make(map[int]bool)
			for _, m := range matches {
				if m.Round != 1 {
					t.Errorf("n=%d: singles round robin must be all round 1, got %d", n, m.Round)
				}
				if len(m.Side1) != 1 || len(m.Side2) != 1 {
					t.Fatalf("n=%d: singles match with side sizes %d/%d", n, len(m.Side1), len(m.Side2))
				}
				if m.Side1[0] == m.Side2[0] {
					t.Fatalf("n=%d: player %d paired with themselves", n, m.Side1[0])
				}
				key := makePairKey(m.Side1[0], m.Side2[0])
				if seenPairs[key] {
					t.Fatalf("n=%d: duplicate pairing %v", n, key)
				}
				seenPairs[key] = true
				appearances[m.Side1[0]]++
				appearances[m.Side2[0]]++
				if seenNumbers[m.MatchNumber] {
					t.Fatalf("n=%d: duplicate match number %d", n, m.MatchNumber)
				}
				seenNumbers[m.MatchNumber] = true
			}
			for _, p := range roster {
				if appearances[p] != n-1 {
					t.Errorf("n=%d: player %d appears in %d matches, want %d", n, p, appearances[p], n-1)
				}
			}
		}
	}
}

func TestSinglesRoundRobinFivePlayers(t *testing.T) {
	gen := NewSinglesRoundRobinGenerator()
	matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
		Roster: testRoster(5),
		Rand:   rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 10 {
		t.Fatalf("5 players must give 10 matches, got %d", len(matches))
	}
	pairs := make(map[pairKey]int)
	for _, m := range matches {
		pairs[makePairKey(m.Side1[0], m.Side2[0])]++
	}
	if len(pairs) != 10 {
		t.Fatalf("expected all 10 distinct pairs, got %d", len(pairs))
	}
	for key, count := range pairs {
		if count != 1 {
			t.Errorf("pair %v plays %d times, want 1", key, count)
		}
	}
}

func TestSinglesRoundRobinTooFewPlayers(t *testing.T) {
	gen := NewSinglesRoundRobinGenerator()
	if _, err := gen.GenerateMatches(context.Background(), GenerateParams{Roster: testRoster(1)}); err == nil {
		t.Fatal("expected error for a one-player roster")
	}
}

func TestDoublesFullRotationProperties(t *testing.T) {
	gen := NewDoublesRoundRobinGenerator()

	for _, n := range []int{4, 6, 8, 10} {
		for seed := int64(0); seed < 5; seed++ {
			roster := testRoster(n)
			matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
				Tournament: &models.Tournament{Format: models.FormatDoubles, AvailableCourts: 2},
				Roster:     roster,
				Rand:       rand.New(rand.NewSource(seed)),
			})
			if err != nil {
				t.Fatalf("n=%d seed=%d: %v", n, seed, err)
			}
			if len(matches) == 0 {
				t.Fatalf("n=%d: rotation produced no matches", n)
			}

			games := make(map[models.PlayerID]int)
			partnerships := make(map[pairKey]bool)
			for _, m := range matches {
				players := append(append([]models.PlayerID{}, m.Side1...), m.Side2...)
				if len(players) != 4 {
					t.Fatalf("n=%d: doubles match with %d players", n, len(players))
				}
				distinct := make(map[models.PlayerID]bool)
				for _, p := range players {
					distinct[p] = true
					games[p]++
				}
				if len(distinct) != 4 {
					t.Fatalf("n=%d: match players not distinct: %v vs %v", n, m.Side1, m.Side2)
				}
				for _, side := range [][]models.PlayerID{m.Side1, m.Side2} {
					key := makePairKey(side[0], side[1])
					if partnerships[key] {
						t.Fatalf("n=%d: partnership %v repeated", n, key)
					}
					partnerships[key] = true
				}
			}
			for p, g := range games {
				if g > n-1 {
					t.Errorf("n=%d: player %d has %d games, limit %d", n, p, g, n-1)
				}
			}
		}
	}
}

func TestDoublesFullRotationRoundGrouping(t *testing.T) {
	gen := NewDoublesRoundRobinGenerator()
	matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
		Tournament: &models.Tournament{Format: models.FormatDoubles, AvailableCourts: 4},
		Roster:     testRoster(8),
		Rand:       rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatal(err)
	}
	perRound := 8 / 4
	for i, m := range matches {
		if want := i/perRound + 1; m.Round != want {
			t.Errorf("match %d: round %d, want %d", i, m.Round, want)
		}
		if m.MatchNumber != i+1 {
			t.Errorf("match %d: match number %d, want %d", i, m.MatchNumber, i+1)
		}
	}
}

func TestDoublesBoundedProperties(t *testing.T) {
	gen := NewDoublesRoundRobinGenerator()

	cases := []struct {
		n, maxRounds, courts int
	}{
		{4, 3, 1},
		{6, 4, 2},
		{8, 2, 2},
		{10, 5, 2},
		{12, 3, 4},
	}

	for _, tc := range cases {
		for seed := int64(0); seed < 5; seed++ {
			roster := testRoster(tc.n)
			matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
				Tournament: &models.Tournament{
					Format:          models.FormatDoubles,
					AvailableCourts: tc.courts,
					MaxRounds:       intPtr(tc.maxRounds),
				},
				Roster: roster,
				Rand:   rand.New(rand.NewSource(seed)),
			})
			if err != nil {
				t.Fatalf("%+v seed=%d: %v", tc, seed, err)
			}

			maxPerRound := tc.n / 4
			if tc.courts < maxPerRound {
				maxPerRound = tc.courts
			}

			byRound := make(map[int][]*PlannedMatch)
			for _, m := range matches {
				if m.Round < 1 || m.Round > tc.maxRounds {
					t.Fatalf("%+v: round %d out of range", tc, m.Round)
				}
				byRound[m.Round] = append(byRound[m.Round], m)
			}
			if len(byRound) > tc.maxRounds {
				t.Fatalf("%+v: %d distinct rounds, max %d", tc, len(byRound), tc.maxRounds)
			}

			for round, roundMatches := range byRound {
				if len(roundMatches) > maxPerRound {
					t.Errorf("%+v: round %d has %d matches, max %d", tc, round, len(roundMatches), maxPerRound)
				}
				seen := make(map[models.PlayerID]bool)
				for _, m := range roundMatches {
					for _, p := range append(append([]models.PlayerID{}, m.Side1...), m.Side2...) {
						if seen[p] {
							t.Errorf("%+v: player %d plays twice in round %d", tc, p, round)
						}
						seen[p] = true
					}
				}
			}
		}
	}
}

func TestDoublesBoundedEightPlayersTwoCourts(t *testing.T) {
	gen := NewDoublesRoundRobinGenerator()

	for seed := int64(0); seed < 10; seed++ {
		matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
			Tournament: &models.Tournament{
				Format:          models.FormatDoubles,
				AvailableCourts: 2,
				MaxRounds:       intPtr(2),
			},
			Roster: testRoster(8),
			Rand:   rand.New(rand.NewSource(seed)),
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 4 {
			t.Fatalf("seed=%d: want 2 rounds x 2 matches = 4, got %d", seed, len(matches))
		}

		byRound := map[int]map[models.PlayerID]bool{}
		for _, m := range matches {
			if byRound[m.Round] == nil {
				byRound[m.Round] = map[models.PlayerID]bool{}
			}
			for _, p := range append(append([]models.PlayerID{}, m.Side1...), m.Side2...) {
				if byRound[m.Round][p] {
					t.Fatalf("seed=%d: player %d repeated in round %d", seed, p, m.Round)
				}
				byRound[m.Round][p] = true
			}
		}
		if len(byRound) != 2 {
			t.Fatalf("seed=%d: want exactly 2 rounds, got %d", seed, len(byRound))
		}
		// With 8 players and 2 courts everyone plays every round.
		for round, players := range byRound {
			if len(players) != 8 {
				t.Errorf("seed=%d: round %d has %d distinct players, want 8", seed, round, len(players))
			}
		}
	}
}

// A second round over four players can only repeat partnerships, but with six
// players the greedy pass must rotate partners rather than replaying round 1.
func TestDoublesBoundedAvoidsRepeatPartnerships(t *testing.T) {
	gen := NewDoublesRoundRobinGenerator()

	for seed := int64(0); seed < 10; seed++ {
		matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
			Tournament: &models.Tournament{
				Format:          models.FormatDoubles,
				AvailableCourts: 1,
				MaxRounds:       intPtr(3),
			},
			Roster: testRoster(6),
			Rand:   rand.New(rand.NewSource(seed)),
		})
		if err != nil {
			t.Fatal(err)
		}

		partnerships := make(map[pairKey]int)
		for _, m := range matches {
			partnerships[makePairKey(m.Side1[0], m.Side1[1])]++
			partnerships[makePairKey(m.Side2[0], m.Side2[1])]++
		}
		// 6 players, 3 rounds, 1 court: 6 partnerships committed out of 15
		// possible pairs. The scorer must spread them out.
		for key, count := range partnerships {
			if count > 1 {
				t.Errorf("seed=%d: partnership %v used %d times within 3 rounds of 6 players", seed, key, count)
			}
		}
	}
}

func TestDoublesRoundRobinRejectsBadRosters(t *testing.T) {
	gen := NewDoublesRoundRobinGenerator()

	if _, err := gen.GenerateMatches(context.Background(), GenerateParams{Roster: testRoster(2)}); err == nil {
		t.Error("expected error for a roster below 4")
	}
	if _, err := gen.GenerateMatches(context.Background(), GenerateParams{Roster: testRoster(5)}); err == nil {
		t.Error("expected error for an odd roster")
	}
}
