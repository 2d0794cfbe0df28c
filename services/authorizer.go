package services

import (
	"context"
	"errors"

	"github.com/racketclub/club-system/models"
	"github.com/racketclub/club-system/repositories"
)

type Action string

const (
	ActionCreateTournament Action = "tournament:create"
	ActionDeleteTournament Action = "tournament:delete"
)

// Authorizer answers whether a user may perform an action. The tournament
// lifecycle consults it before any generation or persistence work so a denial
// short-circuits the whole operation.
type Authorizer interface {
	Authorize(ctx context.Context, userID int64, action Action) error
}

type roleAuthorizer struct {
	userRepo repositories.UserRepository
}

// NewRoleAuthorizer allows tournament management for organizers and admins.
func NewRoleAuthorizer(userRepo repositories.UserRepository) Authorizer {
	return &roleAuthorizer{userRepo: userRepo}
}

func (a *roleAuthorizer) Authorize(ctx context.Context, userID int64, action Action) error {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrAuthenticationFailed
		}
		return err
	}

	switch action {
	case ActionCreateTournament, ActionDeleteTournament:
		if user.Role == models.RoleOrganizer || user.Role == models.RoleAdmin {
			return nil
		}
		return ErrForbiddenOperation
	}
	return ErrForbiddenOperation
}
