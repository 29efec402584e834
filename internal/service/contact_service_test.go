package service

import (
	"context"
	"strings"
	"testing"

	"github.com/spec-kit/makeready-service/internal/auth"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

func TestContactService_Submit_Anonymous(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), nil)

	form, err := svc.Submit(context.Background(), auth.AnonymousCaller(),
		"Pat Doe", "pat@example.com", "555-0100", "Need make-ready help")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.HasPrefix(form.ID, "CF-") {
		t.Errorf("form id format wrong: %s", form.ID)
	}
	if form.SubmittedAt.IsZero() {
		t.Error("submittedAt must be set")
	}
	if form.Name != "Pat Doe" || form.Email != "pat@example.com" || form.Phone != "555-0100" {
		t.Errorf("fields must be stored verbatim: %+v", form)
	}
}

func TestContactService_Submit_FreshIDs(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), nil)
	ctx := context.Background()

	first, err := svc.Submit(ctx, auth.AnonymousCaller(), "a", "a@example.com", "", "m1")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(ctx, auth.AnonymousCaller(), "b", "b@example.com", "", "m2")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("each submission must get a fresh id, both got %s", first.ID)
	}
}

func TestContactService_ListForms_AdminOnly(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, auth.AnonymousCaller(), "a", "a@example.com", "", "m1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.ListForms(ctx, agentCaller); !apperrors.IsCode(err, "FORBIDDEN") {
		t.Errorf("user list: expected FORBIDDEN, got %v", err)
	}
	if _, err := svc.ListForms(ctx, auth.AnonymousCaller()); !apperrors.IsCode(err, "UNAUTHENTICATED") {
		t.Errorf("anonymous list: expected UNAUTHENTICATED, got %v", err)
	}

	forms, err := svc.ListForms(ctx, adminCaller)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
}

func TestContactService_GetForm(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), nil)
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, auth.AnonymousCaller(), "a", "a@example.com", "", "m1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.GetForm(ctx, agentCaller, submitted.ID); !apperrors.IsCode(err, "FORBIDDEN") {
		t.Errorf("user get: expected FORBIDDEN, got %v", err)
	}

	form, err := svc.GetForm(ctx, adminCaller, submitted.ID)
	if err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if form.ID != submitted.ID {
		t.Errorf("expected form %s, got %s", submitted.ID, form.ID)
	}

	if _, err := svc.GetForm(ctx, adminCaller, "CF-MISSING"); !apperrors.IsCode(err, "NOT_FOUND") {
		t.Errorf("missing get: expected NOT_FOUND, got %v", err)
	}
}
