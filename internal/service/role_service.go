package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// RoleService resolves the role grant for an authenticated user
type RoleService interface {
	// ResolveRole returns the capability the user holds. Resolution is
	// fail-closed: if the grant lookup errors, the user is treated as a
	// non-admin viewer and the error is logged.
	ResolveRole(ctx context.Context, userID string) model.Role
}

type roleService struct {
	repo       repository.RoleRepository
	roleLogger zerolog.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(repo repository.RoleRepository, logger zerolog.Logger) RoleService {
	return &roleService{
		repo:       repo,
		roleLogger: logger.With().Str("service", "RoleService").Logger(),
	}
}

func (s *roleService) ResolveRole(ctx context.Context, userID string) model.Role {
	isAdmin, err := s.repo.HasRole(ctx, userID, model.RoleAdmin)
	if err != nil {
		s.roleLogger.Error().Err(err).Str("user_id", userID).Msg("Failed to resolve role grant, treating user as non-admin")
		return model.RoleNone
	}
	if isAdmin {
		return model.RoleAdmin
	}
	return model.RoleNone
}
