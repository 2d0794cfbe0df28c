package scheduling

import (
	"testing"

	"github.com/racketclub/club-system/models"
)

func TestFairnessTrackerRecordMatch(t *testing.T) {
	tracker := NewFairnessTracker()
	side1 := []models.PlayerID{1, 2}
	side2 := []models.PlayerID{3, 4}

	tracker.RecordMatch(side1, side2)

	if got := tracker.PartnershipCount(1, 2); got != 1 {
		t.Errorf("partnership(1,2) = %d, want 1", got)
	}
	if got := tracker.PartnershipCount(2, 1); got != 1 {
		t.Errorf("partnership count must be order independent, got %d", got)
	}
	if got := tracker.PartnershipCount(1, 3); got != 0 {
		t.Errorf("cross-team pair counted as partnership: %d", got)
	}
	for _, p1 := range side1 {
		for _, p2 := range side2 {
			if got := tracker.OppositionCount(p1, p2); got != 1 {
				t.Errorf("opposition(%d,%d) = %d, want 1", p1, p2, got)
			}
		}
	}
	for _, p := range []models.PlayerID{1, 2, 3, 4} {
		if got := tracker.GameCount(p); got != 1 {
			t.Errorf("games(%d) = %d, want 1", p, got)
		}
	}

	tracker.RecordMatch(side1, side2)
	if got := tracker.PartnershipCount(1, 2); got != 2 {
		t.Errorf("counters must accumulate, partnership(1,2) = %d, want 2", got)
	}
}

func TestScoreSplitFreshMatch(t *testing.T) {
	tracker := NewFairnessTracker()
	team1 := [2]models.PlayerID{1, 2}
	team2 := [2]models.PlayerID{3, 4}

	// Untouched counters: 2 partnerships at base, 4 oppositions at base,
	// 4 players at base load.
	want := 2*100 + 4*50 + 4*25
	if got := DefaultScoreWeights.ScoreSplit(team1, team2, tracker); got != want {
		t.Errorf("fresh split score = %d, want %d", got, want)
	}
}

func TestScoreSplitPrefersNewPartnership(t *testing.T) {
	tracker := NewFairnessTracker()
	// 1 and 2 have already partnered once.
	tracker.RecordMatch([]models.PlayerID{1, 2}, []models.PlayerID{3, 4})

	repeat := DefaultScoreWeights.ScoreSplit([2]models.PlayerID{1, 2}, [2]models.PlayerID{5, 6}, tracker)
	fresh := DefaultScoreWeights.ScoreSplit([2]models.PlayerID{1, 5}, [2]models.PlayerID{2, 6}, tracker)

	if fresh <= repeat {
		t.Errorf("scorer must prefer the split avoiding a repeated partnership: fresh=%d repeat=%d", fresh, repeat)
	}
}

func TestScoreSplitDoesNotMutateTracker(t *testing.T) {
	tracker := NewFairnessTracker()
	tracker.RecordMatch([]models.PlayerID{1, 2}, []models.PlayerID{3, 4})

	DefaultScoreWeights.ScoreSplit([2]models.PlayerID{1, 3}, [2]models.PlayerID{2, 4}, tracker)

	if tracker.PartnershipCount(1, 3) != 0 || tracker.OppositionCount(1, 2) != 0 {
		t.Fatal("scoring must not write to the tracker")
	}
	if tracker.GameCount(1) != 1 {
		t.Fatalf("game count changed by scoring: %d", tracker.GameCount(1))
	}
}
