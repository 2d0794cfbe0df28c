package scheduling

import "github.com/racketclub/club-system/models"

// pairKey is an unordered player pair. makePairKey normalizes the order so
// (a,b) and (b,a) hit the same map entry.
type pairKey struct {
	lo, hi models.PlayerID
}

func makePairKey(a, b models.PlayerID) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// FairnessTracker accumulates partnership, opposition and per-player game
// counts over one generation run. Counters only ever grow; the tracker is
// never shared between runs. Scoring reads the tracker, only the generator
// loop writes it.
type FairnessTracker struct {
	partnerships map[pairKey]int
	oppositions  map[pairKey]int
	games        map[models.PlayerID]int
}

func NewFairnessTracker() *FairnessTracker {
	return &FairnessTracker{
		partnerships: make(map[pairKey]int),
		oppositions:  make(map[pairKey]int),
		games:        make(map[models.PlayerID]int),
	}
}

func (t *FairnessTracker) PartnershipCount(a, b models.PlayerID) int {
	return t.partnerships[makePairKey(a, b)]
}

func (t *FairnessTracker) OppositionCount(a, b models.PlayerID) int {
	return t.oppositions[makePairKey(a, b)]
}

func (t *FairnessTracker) GameCount(p models.PlayerID) int {
	return t.games[p]
}

// RecordMatch commits a scheduled match into the counters: both partnerships
// (for two-player sides), every cross-side opposition, and one game per
// participant.
func (t *FairnessTracker) RecordMatch(side1, side2 []models.PlayerID) {
	if len(side1) == 2 {
		t.partnerships[makePairKey(side1[0], side1[1])]++
	}
	if len(side2) == 2 {
		t.partnerships[makePairKey(side2[0], side2[1])]++
	}
	for _, p1 := range side1 {
		for _, p2 := range side2 {
			t.oppositions[makePairKey(p1, p2)]++
		}
	}
	for _, p := range side1 {
		t.games[p]++
	}
	for _, p := range side2 {
		t.games[p]++
	}
}

// ScoreWeights are the tuning values of the split scorer. They were arrived
// at empirically; treat them as knobs, not constants.
type ScoreWeights struct {
	PartnershipBase   int
	PartnershipRepeat int
	OppositionBase    int
	OppositionRepeat  int
	GameLoadBase      int
	GameLoadRepeat    int
}

var DefaultScoreWeights = ScoreWeights{
	PartnershipBase:   100,
	PartnershipRepeat: 10,
	OppositionBase:    50,
	OppositionRepeat:  5,
	GameLoadBase:      25,
	GameLoadRepeat:    2,
}

// ScoreSplit rates one way of splitting four players into two teams against
// the history in the tracker. Higher is fresher: unseen partnerships, unseen
// oppositions and underplayed players all raise the score. The result can go
// negative; callers compare candidates, the absolute value means nothing.
// The scorer never mutates the tracker.
func (w ScoreWeights) ScoreSplit(team1, team2 [2]models.PlayerID, tracker *FairnessTracker) int {
	score := 0

	score += w.PartnershipBase - w.PartnershipRepeat*tracker.PartnershipCount(team1[0], team1[1])
	score += w.PartnershipBase - w.PartnershipRepeat*tracker.PartnershipCount(team2[0], team2[1])

	for _, p1 := range team1 {
		for _, p2 := range team2 {
			score += w.OppositionBase - w.OppositionRepeat*tracker.OppositionCount(p1, p2)
		}
	}

	for _, p := range team1 {
		score += w.GameLoadBase - w.GameLoadRepeat*tracker.GameCount(p)
	}
	for _, p := range team2 {
		score += w.GameLoadBase - w.GameLoadRepeat*tracker.GameCount(p)
	}

	return score
}
