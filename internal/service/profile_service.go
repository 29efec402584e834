package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/persistence"
	"github.com/spec-kit/makeready-service/internal/repository"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// ProfileService coordinates profile reads/writes and role resolution. It is
// the source of truth the role authority consults: principals without a
// profile resolve to guest so callers can distinguish "needs onboarding"
// from "is a normal user".
type ProfileService struct {
	profiles  repository.ProfileRepository
	roleCache *persistence.RoleCache
	logger    *zap.Logger
}

// NewProfileService builds the service. roleCache may be nil; cache misses
// simply fall through to the repository.
func NewProfileService(profiles repository.ProfileRepository, roleCache *persistence.RoleCache, logger *zap.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, roleCache: roleCache, logger: logger}
}

// GetOwnProfile returns the caller's profile.
func (s *ProfileService) GetOwnProfile(ctx context.Context, caller auth.Caller) (*domain.UserProfile, error) {
	if err := auth.Authorize(caller, auth.OpReadOwnProfile); err != nil {
		return nil, err
	}
	return s.get(ctx, caller.Principal)
}

// GetProfile returns the profile for an arbitrary principal.
func (s *ProfileService) GetProfile(ctx context.Context, caller auth.Caller, principal domain.Principal) (*domain.UserProfile, error) {
	if err := auth.Authorize(caller, auth.OpReadUserProfile); err != nil {
		return nil, err
	}
	return s.get(ctx, principal)
}

// SaveOwnProfile creates the caller's profile, or re-saves its name. New
// profiles always start with the user role; role changes go through
// AssignRole only.
func (s *ProfileService) SaveOwnProfile(ctx context.Context, caller auth.Caller, name string) (*domain.UserProfile, error) {
	if err := auth.Authorize(caller, auth.OpSaveOwnProfile); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	profile := &domain.UserProfile{
		Principal: caller.Principal,
		Name:      name,
		Role:      domain.RoleUser,
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.roleCache.Invalidate(ctx, caller.Principal)
	return profile, nil
}

// GetOwnRole returns the caller's role; guest when no profile exists yet.
func (s *ProfileService) GetOwnRole(ctx context.Context, caller auth.Caller) (domain.UserRole, error) {
	if err := auth.Authorize(caller, auth.OpReadOwnRole); err != nil {
		return "", err
	}
	return s.ResolveRole(ctx, caller.Principal)
}

// IsAdmin reports whether the caller holds the admin role.
func (s *ProfileService) IsAdmin(ctx context.Context, caller auth.Caller) (bool, error) {
	role, err := s.GetOwnRole(ctx, caller)
	if err != nil {
		return false, err
	}
	return role == domain.RoleAdmin, nil
}

// AssignRole sets the role on the target principal's profile. Admin-only; an
// admin may change any principal's role, their own included.
func (s *ProfileService) AssignRole(ctx context.Context, caller auth.Caller, target domain.Principal, role domain.UserRole) error {
	if err := auth.Authorize(caller, auth.OpAssignRole); err != nil {
		return err
	}
	if err := s.profiles.UpdateRole(ctx, target, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("profile", map[string]any{"principal": string(target)})
		}
		return apperrors.MapError(err)
	}
	s.roleCache.Invalidate(ctx, target)
	s.logger.Info("role assigned",
		zap.String("target", string(target)),
		zap.String("role", string(role)),
		zap.String("by", string(caller.Principal)))
	return nil
}

// ResolveRole resolves a principal's role for the identity middleware:
// cache, then profile store, then guest.
func (s *ProfileService) ResolveRole(ctx context.Context, principal domain.Principal) (domain.UserRole, error) {
	if principal.IsAnonymous() {
		return domain.RoleGuest, nil
	}
	if role, ok := s.roleCache.Get(ctx, principal); ok {
		return role, nil
	}

	profile, err := s.profiles.Get(ctx, principal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RoleGuest, nil
		}
		return domain.RoleGuest, err
	}
	s.roleCache.Set(ctx, principal, profile.Role)
	return profile.Role, nil
}

func (s *ProfileService) get(ctx context.Context, principal domain.Principal) (*domain.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, principal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"principal": string(principal)})
		}
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}
