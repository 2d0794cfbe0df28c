package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/racketclub/club-system/models"
	"github.com/racketclub/club-system/repositories"
)

// GameService records match results. Result recording does not drive bracket
// advancement; elimination tournaments only carry a generated round 1.
type GameService struct {
	gameRepo  repositories.GameRepository
	matchRepo repositories.MatchRepository
	logger    *slog.Logger
}

func NewGameService(gameRepo repositories.GameRepository, matchRepo repositories.MatchRepository, logger *slog.Logger) *GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameService{gameRepo: gameRepo, matchRepo: matchRepo, logger: logger}
}

type RecordResultInput struct {
	TournamentID int64
	MatchID      int64
	Side1Score   int
	Side2Score   int
}

func (s *GameService) RecordResult(ctx context.Context, input RecordResultInput, recordedBy int64) (*models.Game, error) {
	match, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if match.TournamentID != input.TournamentID {
		return nil, ErrMatchNotInTournament
	}

	game := &models.Game{
		TournamentID: input.TournamentID,
		MatchID:      input.MatchID,
		Side1Score:   input.Side1Score,
		Side2Score:   input.Side2Score,
		RecordedBy:   recordedBy,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}

	if err := s.matchRepo.UpdateStatus(ctx, match.ID, models.MatchStatusCompleted); err != nil {
		s.logger.Warn("game recorded but match status update failed",
			slog.Int64("match_id", match.ID), slog.Any("error", err))
	}
	return game, nil
}
