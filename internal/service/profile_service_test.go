package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

func newProfileServiceFixture() (*ProfileService, *stubProfileRepo) {
	repo := newStubProfileRepo()
	return NewProfileService(repo, nil, zap.NewNop()), repo
}

func TestProfileService_SaveAndGetOwnProfile(t *testing.T) {
	svc, _ := newProfileServiceFixture()
	ctx := context.Background()

	saved, err := svc.SaveOwnProfile(ctx, agentCaller, "  Dana Reed  ")
	if err != nil {
		t.Fatalf("saveOwnProfile: %v", err)
	}
	if saved.Name != "Dana Reed" {
		t.Errorf("name must be trimmed, got %q", saved.Name)
	}
	if saved.Role != domain.RoleUser {
		t.Errorf("new profile must start as user, got %q", saved.Role)
	}

	got, err := svc.GetOwnProfile(ctx, agentCaller)
	if err != nil {
		t.Fatalf("getOwnProfile: %v", err)
	}
	if got.Name != "Dana Reed" || got.Principal != agentCaller.Principal {
		t.Errorf("unexpected profile: %+v", got)
	}
}

func TestProfileService_SaveOwnProfile_EmptyName(t *testing.T) {
	svc, _ := newProfileServiceFixture()

	_, err := svc.SaveOwnProfile(context.Background(), agentCaller, "   ")
	if !apperrors.IsCode(err, "VALIDATION_FAILED") {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestProfileService_SaveOwnProfile_RoleSticksOnResave(t *testing.T) {
	svc, repo := newProfileServiceFixture()
	ctx := context.Background()

	if _, err := svc.SaveOwnProfile(ctx, agentCaller, "Dana"); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.UpdateRole(ctx, agentCaller.Principal, domain.RoleAdmin); err != nil {
		t.Fatalf("promote: %v", err)
	}

	resaved, err := svc.SaveOwnProfile(ctx, agentCaller, "Dana R")
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if resaved.Role != domain.RoleAdmin {
		t.Errorf("re-saving a profile must not downgrade the role, got %q", resaved.Role)
	}
	if resaved.Name != "Dana R" {
		t.Errorf("name must update, got %q", resaved.Name)
	}
}

func TestProfileService_GetOwnProfile_AnonymousRejected(t *testing.T) {
	svc, _ := newProfileServiceFixture()

	_, err := svc.GetOwnProfile(context.Background(), auth.AnonymousCaller())
	if !apperrors.IsCode(err, "UNAUTHENTICATED") {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
}

func TestProfileService_GetOwnRole_GuestWithoutProfile(t *testing.T) {
	svc, _ := newProfileServiceFixture()

	role, err := svc.GetOwnRole(context.Background(), agentCaller)
	if err != nil {
		t.Fatalf("getOwnRole: %v", err)
	}
	if role != domain.RoleGuest {
		t.Errorf("principal without a profile must resolve to guest, got %q", role)
	}
}

func TestProfileService_GetOwnRole_AfterSave(t *testing.T) {
	svc, _ := newProfileServiceFixture()
	ctx := context.Background()

	if _, err := svc.SaveOwnProfile(ctx, agentCaller, "Dana"); err != nil {
		t.Fatalf("saveOwnProfile: %v", err)
	}

	role, err := svc.GetOwnRole(ctx, agentCaller)
	if err != nil {
		t.Fatalf("getOwnRole: %v", err)
	}
	if role != domain.RoleUser {
		t.Errorf("expected user role, got %q", role)
	}
}

func TestProfileService_IsAdmin(t *testing.T) {
	svc, repo := newProfileServiceFixture()
	ctx := context.Background()

	if _, err := svc.SaveOwnProfile(ctx, agentCaller, "Dana"); err != nil {
		t.Fatalf("saveOwnProfile: %v", err)
	}
	isAdmin, err := svc.IsAdmin(ctx, agentCaller)
	if err != nil {
		t.Fatalf("isAdmin: %v", err)
	}
	if isAdmin {
		t.Error("plain user must not be admin")
	}

	if err := repo.UpdateRole(ctx, agentCaller.Principal, domain.RoleAdmin); err != nil {
		t.Fatalf("promote: %v", err)
	}
	isAdmin, err = svc.IsAdmin(ctx, agentCaller)
	if err != nil {
		t.Fatalf("isAdmin after promote: %v", err)
	}
	if !isAdmin {
		t.Error("promoted caller must be admin")
	}
}

func TestProfileService_AssignRole_AdminOnly(t *testing.T) {
	svc, _ := newProfileServiceFixture()
	ctx := context.Background()

	if _, err := svc.SaveOwnProfile(ctx, agentCaller, "Dana"); err != nil {
		t.Fatalf("saveOwnProfile: %v", err)
	}

	err := svc.AssignRole(ctx, agentCaller, agentCaller.Principal, domain.RoleAdmin)
	if !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("non-admin assign must be FORBIDDEN, got %v", err)
	}

	if err := svc.AssignRole(ctx, adminCaller, agentCaller.Principal, domain.RoleAdmin); err != nil {
		t.Fatalf("admin assign: %v", err)
	}
	role, err := svc.ResolveRole(ctx, agentCaller.Principal)
	if err != nil {
		t.Fatalf("resolveRole: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Errorf("expected admin after assignment, got %q", role)
	}
}

func TestProfileService_AssignRole_MissingProfile(t *testing.T) {
	svc, _ := newProfileServiceFixture()

	err := svc.AssignRole(context.Background(), adminCaller, "principal-ghost", domain.RoleAdmin)
	if !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestProfileService_ResolveRole_Anonymous(t *testing.T) {
	svc, _ := newProfileServiceFixture()

	role, err := svc.ResolveRole(context.Background(), domain.Anonymous)
	if err != nil {
		t.Fatalf("resolveRole: %v", err)
	}
	if role != domain.RoleGuest {
		t.Errorf("anonymous must resolve to guest, got %q", role)
	}
}
