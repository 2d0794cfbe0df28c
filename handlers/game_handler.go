package handlers

import (
	"net/http"

	"github.com/racketclub/club-system/middleware"
	"github.com/racketclub/club-system/services"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type recordResultRequest struct {
	MatchID    int64 `json:"match_id"`
	Side1Score int   `json:"side1_score"`
	Side2Score int   `json:"side2_score"`
}

func (h *GameHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	tournamentID, err := tournamentIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req recordResultRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.RecordResult(r.Context(), services.RecordResultInput{
		TournamentID: tournamentID,
		MatchID:      req.MatchID,
		Side1Score:   req.Side1Score,
		Side2Score:   req.Side2Score,
	}, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
