package dto

// SaveProfileRequest is the self-service profile creation payload. A role
// field, if sent, is ignored: roles change only through role assignment.
type SaveProfileRequest struct {
	Name string `json:"name"`
}

// AssignRoleRequest sets a principal's role, admin-only.
type AssignRoleRequest struct {
	Role string `json:"role"`
}

// ProfileResponse carries a user profile on the wire.
type ProfileResponse struct {
	Principal string `json:"principal"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

// RoleResponse carries the caller's resolved role.
type RoleResponse struct {
	Role string `json:"role"`
}

// AdminCheckResponse answers the isCallerAdmin query.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
