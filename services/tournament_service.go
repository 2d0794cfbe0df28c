package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/racketclub/club-system/models"
	"github.com/racketclub/club-system/repositories"
	"github.com/racketclub/club-system/scheduling"
	"github.com/racketclub/club-system/storage"
)

// LiveBroadcaster pushes tournament events to connected websocket clients.
// Satisfied by *live.Hub; may be nil in tests.
type LiveBroadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type LiveEvent struct {
	Type         string `json:"type"`
	TournamentID int64  `json:"tournament_id"`
}

const (
	EventSchedulePublished = "SCHEDULE_PUBLISHED"
	EventTournamentDeleted = "TOURNAMENT_DELETED"
)

type CreateTournamentInput struct {
	Name            string
	Description     *string
	Format          models.Format
	Type            models.TournamentType
	Roster          []models.PlayerID
	AvailableCourts int
	MaxRounds       *int
}

// TournamentService owns the tournament lifecycle: validation, duration
// estimation, match generation and atomic persistence on create; cascading
// atomic removal of tournament, matches and games on delete.
type TournamentService struct {
	txRunner       repositories.TxRunner
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	gameRepo       repositories.GameRepository
	authorizer     Authorizer
	uploader       storage.FileUploader
	hub            LiveBroadcaster
	logger         *slog.Logger
	weights        scheduling.ScoreWeights
}

func NewTournamentService(
	txRunner repositories.TxRunner,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	gameRepo repositories.GameRepository,
	authorizer Authorizer,
	uploader storage.FileUploader,
	hub LiveBroadcaster,
	logger *slog.Logger,
) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentService{
		txRunner:       txRunner,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		gameRepo:       gameRepo,
		authorizer:     authorizer,
		uploader:       uploader,
		hub:            hub,
		logger:         logger,
		weights:        scheduling.DefaultScoreWeights,
	}
}

// Create validates the input, estimates the tournament duration, generates
// the full match slate and persists the tournament together with every match
// in a single transaction. Nothing is written when any step fails.
func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput, creatorID int64) (*models.Tournament, error) {
	if err := s.authorizer.Authorize(ctx, creatorID, ActionCreateTournament); err != nil {
		return nil, err
	}
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		Name:            input.Name,
		Description:     input.Description,
		Format:          input.Format,
		Type:            input.Type,
		Status:          models.StatusScheduled,
		Roster:          input.Roster,
		AvailableCourts: input.AvailableCourts,
		MaxRounds:       input.MaxRounds,
		CreatedBy:       creatorID,
		EstimatedDurationMinutes: scheduling.EstimateDurationMinutes(
			len(input.Roster), input.Format, input.Type, input.MaxRounds, input.AvailableCourts),
	}

	generator, err := scheduling.ForTournament(input.Type, input.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	planned, err := generator.GenerateMatches(ctx, scheduling.GenerateParams{
		Tournament: tournament,
		Roster:     input.Roster,
		Weights:    &s.weights,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	txErr := s.txRunner.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.tournamentRepo.Create(ctx, exec, tournament); err != nil {
			return err
		}
		for _, pm := range planned {
			match := &models.Match{
				TournamentID: tournament.ID,
				Round:        pm.Round,
				MatchNumber:  pm.MatchNumber,
				Side1:        pm.Side1,
				Side2:        pm.Side2,
				Status:       models.MatchStatusPending,
			}
			if err := s.matchRepo.Create(ctx, exec, match); err != nil {
				return err
			}
			tournament.Matches = append(tournament.Matches, *match)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		s.logger.Error("tournament creation transaction failed",
			slog.String("name", input.Name), slog.Any("error", txErr))
		return nil, ErrTournamentCreateFailed
	}

	s.logger.Info("tournament created",
		slog.Int64("tournament_id", tournament.ID),
		slog.String("generator", generator.GetName()),
		slog.Int("matches", len(tournament.Matches)))

	if s.hub != nil {
		s.hub.BroadcastToRoom(roomID(tournament.ID), LiveEvent{
			Type:         EventSchedulePublished,
			TournamentID: tournament.ID,
		})
	}
	return tournament, nil
}

// Delete removes the tournament, all of its matches and all recorded games
// in one transaction. A partially deleted tournament is never observable.
func (s *TournamentService) Delete(ctx context.Context, id int64, userID int64) error {
	if err := s.authorizer.Authorize(ctx, userID, ActionDeleteTournament); err != nil {
		return err
	}
	if _, err := s.tournamentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return err
	}

	txErr := s.txRunner.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.gameRepo.DeleteByTournament(ctx, exec, id); err != nil {
			return err
		}
		if err := s.matchRepo.DeleteByTournament(ctx, exec, id); err != nil {
			return err
		}
		return s.tournamentRepo.Delete(ctx, exec, id)
	})
	if txErr != nil {
		s.logger.Error("tournament deletion transaction failed",
			slog.Int64("tournament_id", id), slog.Any("error", txErr))
		return ErrTournamentDeleteFailed
	}

	s.logger.Info("tournament deleted", slog.Int64("tournament_id", id))

	if s.hub != nil {
		s.hub.BroadcastToRoom(roomID(id), LiveEvent{
			Type:         EventTournamentDeleted,
			TournamentID: id,
		})
	}
	return nil
}

// GetByID loads the tournament with its matches and games fetched in
// parallel.
func (s *TournamentService) GetByID(ctx context.Context, id int64) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := s.matchRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch matches for tournament %d: %w", id, err)
		}
		tournament.Matches = make([]models.Match, 0, len(matches))
		for _, m := range matches {
			tournament.Matches = append(tournament.Matches, *m)
		}
		return nil
	})
	g.Go(func() error {
		games, err := s.gameRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch games for tournament %d: %w", id, err)
		}
		tournament.Games = make([]models.Game, 0, len(games))
		for _, game := range games {
			tournament.Games = append(tournament.Games, *game)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.populatePosterURL(tournament)
	return tournament, nil
}

func (s *TournamentService) List(ctx context.Context, limit, offset int) ([]models.Tournament, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	tournaments, err := s.tournamentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		s.populatePosterURL(&tournaments[i])
	}
	return tournaments, nil
}

// SetPoster uploads a tournament poster and records its object key, removing
// the previous poster if one existed.
func (s *TournamentService) SetPoster(ctx context.Context, id int64, contentType string, reader io.Reader, userID int64) (*models.Tournament, error) {
	if err := s.authorizer.Authorize(ctx, userID, ActionCreateTournament); err != nil {
		return nil, err
	}
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: no uploader configured", ErrValidationFailed)
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	key := fmt.Sprintf("tournaments/%d/poster%s", id, ext)

	if _, err := s.uploader.Upload(ctx, key, contentType, reader); err != nil {
		s.logger.Error("poster upload failed", slog.Int64("tournament_id", id), slog.Any("error", err))
		return nil, fmt.Errorf("failed to upload poster: %w", err)
	}
	if tournament.PosterKey != nil && *tournament.PosterKey != key {
		if err := s.uploader.Delete(ctx, *tournament.PosterKey); err != nil {
			s.logger.Warn("failed to delete previous poster",
				slog.Int64("tournament_id", id), slog.String("key", *tournament.PosterKey), slog.Any("error", err))
		}
	}
	if err := s.tournamentRepo.UpdatePosterKey(ctx, id, &key); err != nil {
		return nil, err
	}

	tournament.PosterKey = &key
	s.populatePosterURL(tournament)
	return tournament, nil
}

func (s *TournamentService) populatePosterURL(t *models.Tournament) {
	if t == nil || t.PosterKey == nil || *t.PosterKey == "" || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*t.PosterKey); url != "" {
		t.PosterURL = &url
	}
}

func roomID(tournamentID int64) string {
	return fmt.Sprintf("tournament:%d", tournamentID)
}

func validateCreateInput(input CreateTournamentInput) error {
	if input.Name == "" {
		return ErrTournamentNameRequired
	}
	if !input.Format.Valid() {
		return ErrUnsupportedFormat
	}
	if !input.Type.Valid() {
		return ErrUnsupportedType
	}
	if input.AvailableCourts < 1 {
		return ErrInvalidCourtCount
	}
	if input.MaxRounds != nil {
		if input.Type != models.TypeRoundRobin {
			return ErrMaxRoundsNotSupported
		}
		if *input.MaxRounds < 1 {
			return ErrInvalidMaxRounds
		}
	}

	seen := make(map[models.PlayerID]bool, len(input.Roster))
	for _, p := range input.Roster {
		if seen[p] {
			return ErrRosterDuplicatePlayer
		}
		seen[p] = true
	}

	switch input.Format {
	case models.FormatSingles:
		if len(input.Roster) < 2 {
			return ErrRosterTooSmall
		}
	case models.FormatDoubles:
		if len(input.Roster) < 4 {
			return ErrRosterTooSmall
		}
		if len(input.Roster)%2 != 0 {
			return ErrRosterOddForDoubles
		}
	}
	return nil
}
