package scheduling

import "github.com/racketclub/club-system/models"

const (
	roundRobinMatchMinutes  = 9
	eliminationMatchMinutes = 10
)

// EstimateDurationMinutes gives an advisory total duration for a tournament.
// The value is stored at creation and never recomputed.
func EstimateDurationMinutes(playerCount int, format models.Format, tournamentType models.TournamentType, maxRounds *int, availableCourts int) int {
	n := playerCount
	if n < 2 {
		return 0
	}
	courts := availableCourts
	if courts < 1 {
		courts = 1
	}

	switch tournamentType {
	case models.TypeRoundRobin:
		if format == models.FormatDoubles {
			matchesPerRound := n / 4
			if courts < matchesPerRound {
				matchesPerRound = courts
			}
			if matchesPerRound < 1 {
				return 0
			}
			if maxRounds != nil {
				return *maxRounds * matchesPerRound * roundRobinMatchMinutes
			}
			partnerships := n * (n - 1) / 2
			rounds := (partnerships + matchesPerRound - 1) / matchesPerRound
			return rounds * matchesPerRound * roundRobinMatchMinutes
		}

		totalMatches := n * (n - 1) / 2
		if maxRounds != nil {
			matchesPerRound := n / 2
			if courts < matchesPerRound {
				matchesPerRound = courts
			}
			if capped := *maxRounds * matchesPerRound; capped < totalMatches {
				totalMatches = capped
			}
		}
		return totalMatches * roundRobinMatchMinutes

	case models.TypeSingleElimination, models.TypeDoubleElimination:
		var totalMatches int
		if format == models.FormatDoubles {
			totalMatches = n/2 - 1
		} else {
			totalMatches = n - 1
		}
		if totalMatches < 0 {
			totalMatches = 0
		}
		return totalMatches * eliminationMatchMinutes
	}

	return 0
}
