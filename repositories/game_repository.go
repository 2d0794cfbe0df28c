package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/racketclub/club-system/models"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameMatchInvalid = errors.New("game match conflict or invalid")
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	ListByTournament(ctx context.Context, tournamentID int64) ([]*models.Game, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int64) error
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games
			(tournament_id, match_id, side1_score, side2_score, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, recorded_at`

	err := r.db.QueryRowContext(ctx, query,
		game.TournamentID,
		game.MatchID,
		game.Side1Score,
		game.Side2Score,
		game.RecordedBy,
	).Scan(&game.ID, &game.RecordedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return ErrGameMatchInvalid
		}
		return fmt.Errorf("game repository error: %w", err)
	}
	return nil
}

func (r *postgresGameRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]*models.Game, error) {
	query := `
		SELECT id, tournament_id, match_id, side1_score, side2_score, recorded_by, recorded_at
		FROM games
		WHERE tournament_id = $1
		ORDER BY recorded_at`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	games := make([]*models.Game, 0)
	for rows.Next() {
		game := &models.Game{}
		err := rows.Scan(
			&game.ID,
			&game.TournamentID,
			&game.MatchID,
			&game.Side1Score,
			&game.Side2Score,
			&game.RecordedBy,
			&game.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}
	return games, nil
}

func (r *postgresGameRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int64) error {
	_, err := exec.ExecContext(ctx, `DELETE FROM games WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to delete games for tournament %d: %w", tournamentID, err)
	}
	return nil
}
