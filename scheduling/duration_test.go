package scheduling

import (
	"testing"

	"github.com/racketclub/club-system/models"
)

func TestEstimateDurationMinutes(t *testing.T) {
	tests := []struct {
		name      string
		players   int
		format    models.Format
		ttype     models.TournamentType
		maxRounds *int
		courts    int
		want      int
	}{
		{
			name:    "singles round robin 5 players",
			players: 5, format: models.FormatSingles, ttype: models.TypeRoundRobin,
			courts: 2,
			want:   10 * 9,
		},
		{
			name:    "singles round robin capped by rounds",
			players: 8, format: models.FormatSingles, ttype: models.TypeRoundRobin,
			maxRounds: intPtr(2), courts: 3,
			// 2 rounds x min(4, 3) courts = 6 matches, below the full 28.
			want: 6 * 9,
		},
		{
			name:    "doubles bounded round robin",
			players: 8, format: models.FormatDoubles, ttype: models.TypeRoundRobin,
			maxRounds: intPtr(2), courts: 2,
			want: 2 * 2 * 9,
		},
		{
			name:    "doubles full rotation",
			players: 8, format: models.FormatDoubles, ttype: models.TypeRoundRobin,
			courts: 2,
			// 28 partnerships over 2 matches per round -> 14 rounds.
			want: 14 * 2 * 9,
		},
		{
			name:    "single elimination singles",
			players: 16, format: models.FormatSingles, ttype: models.TypeSingleElimination,
			courts: 4,
			want:   15 * 10,
		},
		{
			name:    "double elimination doubles",
			players: 16, format: models.FormatDoubles, ttype: models.TypeDoubleElimination,
			courts: 4,
			want:   7 * 10,
		},
		{
			name:    "too few players",
			players: 1, format: models.FormatSingles, ttype: models.TypeRoundRobin,
			courts: 1,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateDurationMinutes(tt.players, tt.format, tt.ttype, tt.maxRounds, tt.courts)
			if got != tt.want {
				t.Errorf("EstimateDurationMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestForTournament(t *testing.T) {
	if _, err := ForTournament(models.TypeRoundRobin, models.FormatSingles); err != nil {
		t.Errorf("round robin singles: %v", err)
	}
	if _, err := ForTournament(models.TypeRoundRobin, models.FormatDoubles); err != nil {
		t.Errorf("round robin doubles: %v", err)
	}
	if _, err := ForTournament(models.TypeSingleElimination, models.FormatDoubles); err != nil {
		t.Errorf("single elimination doubles: %v", err)
	}
	if _, err := ForTournament(models.TypeDoubleElimination, models.FormatSingles); err != nil {
		t.Errorf("double elimination singles: %v", err)
	}
	if _, err := ForTournament("swiss", models.FormatSingles); err == nil {
		t.Error("expected error for unknown tournament type")
	}
}
