package auth

import (
	"testing"

	"github.com/spec-kit/makeready-service/internal/domain"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

func TestAuthorize(t *testing.T) {
	anonymous := AnonymousCaller()
	user := Caller{Principal: "principal-user", Role: domain.RoleUser}
	guest := Caller{Principal: "principal-guest", Role: domain.RoleGuest}
	admin := Caller{Principal: "principal-admin", Role: domain.RoleAdmin}

	cases := []struct {
		name     string
		caller   Caller
		op       Operation
		wantCode string
	}{
		{"anonymous can submit contact form", anonymous, OpSubmitContactForm, ""},
		{"anonymous can read plans", anonymous, OpReadPlans, ""},
		{"anonymous cannot add property", anonymous, OpAddProperty, "UNAUTHENTICATED"},
		{"anonymous cannot read own profile", anonymous, OpReadOwnProfile, "UNAUTHENTICATED"},
		{"anonymous cannot update status", anonymous, OpUpdateRequestStatus, "UNAUTHENTICATED"},

		{"user can add property", user, OpAddProperty, ""},
		{"user can create request", user, OpCreateRequest, ""},
		{"user can read requests", user, OpReadRequests, ""},
		{"user can upload photo", user, OpUploadPhoto, ""},
		{"user can save own profile", user, OpSaveOwnProfile, ""},
		{"user can read another profile", user, OpReadUserProfile, ""},
		{"user cannot update status", user, OpUpdateRequestStatus, "FORBIDDEN"},
		{"user cannot list contact forms", user, OpReadAllContactForms, "FORBIDDEN"},
		{"user cannot read contact form", user, OpReadContactForm, "FORBIDDEN"},
		{"user cannot assign role", user, OpAssignRole, "FORBIDDEN"},

		{"guest principal can read own role", guest, OpReadOwnRole, ""},
		{"guest principal cannot assign role", guest, OpAssignRole, "FORBIDDEN"},

		{"admin can update status", admin, OpUpdateRequestStatus, ""},
		{"admin can list contact forms", admin, OpReadAllContactForms, ""},
		{"admin can assign role", admin, OpAssignRole, ""},
		{"admin can add property", admin, OpAddProperty, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.caller, tc.op)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("expected allow, got %v", err)
				}
				return
			}
			if !apperrors.IsCode(err, tc.wantCode) {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}
