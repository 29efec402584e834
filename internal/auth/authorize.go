package auth

import (
	"github.com/spec-kit/makeready-service/internal/domain"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// Operation enumerates every call the core exposes, for role-authority
// decisions.
type Operation string

const (
	OpSubmitContactForm Operation = "submitContactForm"
	OpReadPlans         Operation = "readPlans"

	OpUpdateRequestStatus Operation = "updateServiceRequestStatus"
	OpReadAllContactForms Operation = "readAllContactForms"
	OpReadContactForm     Operation = "readContactForm"
	OpAssignRole          Operation = "assignRole"

	OpReadOwnProfile Operation = "readOwnProfile"
	OpSaveOwnProfile Operation = "saveOwnProfile"
	OpReadOwnRole    Operation = "readOwnRole"

	OpAddProperty     Operation = "addProperty"
	OpReadProperties  Operation = "readProperties"
	OpReadProperty    Operation = "readProperty"
	OpCreateRequest   Operation = "createServiceRequest"
	OpReadRequests    Operation = "readServiceRequests"
	OpReadRequest     Operation = "readServiceRequest"
	OpUploadPhoto     Operation = "uploadPhoto"
	OpReadUserProfile Operation = "readUserProfile"
)

var publicOps = map[Operation]struct{}{
	OpSubmitContactForm: {},
	OpReadPlans:         {},
}

var adminOps = map[Operation]struct{}{
	OpUpdateRequestStatus: {},
	OpReadAllContactForms: {},
	OpReadContactForm:     {},
	OpAssignRole:          {},
}

// Authorize decides whether the caller may perform the operation. Rules in
// priority order: anonymous callers get only public operations; admin-tagged
// operations require the admin role; everything else is open to any
// authenticated caller. Self-scoped operations are inherently bound to the
// caller because the principal is the explicit argument.
func Authorize(caller Caller, op Operation) error {
	if _, public := publicOps[op]; public {
		return nil
	}
	if caller.IsAnonymous() {
		return apperrors.NewUnauthenticated("authentication required")
	}
	if _, admin := adminOps[op]; admin && caller.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin role required")
	}
	return nil
}
