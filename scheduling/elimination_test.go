package scheduling

import (
	"context"
	"math/rand"
	"testing"

	"github.com/racketclub/club-system/models"
)

func TestEliminationSinglesRoundOne(t *testing.T) {
	gen := NewEliminationGenerator()

	for n := 2; n <= 11; n++ {
		for seed := int64(0); seed < 5; seed++ {
			roster := testRoster(n)
			matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
				Tournament: &models.Tournament{Format: models.FormatSingles, Type: models.TypeSingleElimination},
				Roster:     roster,
				Rand:       rand.New(rand.NewSource(seed)),
			})
			if err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
			if len(matches) != n/2 {
				t.Fatalf("n=%d: got %d round-1 matches, want %d", n, len(matches), n/2)
			}

			seen := make(map[models.PlayerID]bool)
			for _, m := range matches {
				if m.Round != 1 {
					t.Errorf("n=%d: elimination generation is round 1 only, got round %d", n, m.Round)
				}
				if len(m.Side1) != 1 || len(m.Side2) != 1 || m.Side1[0] == m.Side2[0] {
					t.Fatalf("n=%d: bad singles sides %v vs %v", n, m.Side1, m.Side2)
				}
				for _, p := range []models.PlayerID{m.Side1[0], m.Side2[0]} {
					if seen[p] {
						t.Fatalf("n=%d: player %d scheduled twice in round 1", n, p)
					}
					seen[p] = true
				}
			}
			unmatched := n - len(seen)
			if unmatched != n%2 {
				t.Errorf("n=%d: %d players unmatched, want %d", n, unmatched, n%2)
			}
		}
	}
}

func TestEliminationDoublesFixedTeams(t *testing.T) {
	gen := NewEliminationGenerator()

	for _, n := range []int{4, 6, 8, 12} {
		matches, err := gen.GenerateMatches(context.Background(), GenerateParams{
			Tournament: &models.Tournament{Format: models.FormatDoubles, Type: models.TypeDoubleElimination},
			Roster:     testRoster(n),
			Rand:       rand.New(rand.NewSource(3)),
		})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		teams := n / 2
		if len(matches) != teams/2 {
			t.Fatalf("n=%d: got %d matches, want %d", n, len(matches), teams/2)
		}
		seen := make(map[models.PlayerID]bool)
		for _, m := range matches {
			if len(m.Side1) != 2 || len(m.Side2) != 2 {
				t.Fatalf("n=%d: doubles sides must hold 2 players, got %d/%d", n, len(m.Side1), len(m.Side2))
			}
			for _, p := range append(append([]models.PlayerID{}, m.Side1...), m.Side2...) {
				if seen[p] {
					t.Fatalf("n=%d: player %d scheduled twice in round 1", n, p)
				}
				seen[p] = true
			}
		}
	}
}

func TestEliminationRejectsBadRosters(t *testing.T) {
	gen := NewEliminationGenerator()

	if _, err := gen.GenerateMatches(context.Background(), GenerateParams{
		Tournament: &models.Tournament{Format: models.FormatSingles},
		Roster:     testRoster(1),
	}); err == nil {
		t.Error("expected error for one singles player")
	}
	if _, err := gen.GenerateMatches(context.Background(), GenerateParams{
		Tournament: &models.Tournament{Format: models.FormatDoubles},
		Roster:     testRoster(5),
	}); err == nil {
		t.Error("expected error for an odd doubles roster")
	}
}
