package entity

// Role names carried in access tokens.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleViewer     = "viewer"
)

// Actor is the authenticated user on whose behalf an operation runs.
// It is passed explicitly to every use case that needs an authorization decision.
type Actor struct {
	ID   string
	Name string
	Role string
}

// IsAuthenticated reports whether the actor carries an identity.
func (a Actor) IsAuthenticated() bool {
	return a.ID != ""
}

// IsSuperAdmin reports whether the actor may manage reference data.
func (a Actor) IsSuperAdmin() bool {
	return a.IsAuthenticated() && a.Role == RoleSuperAdmin
}

// DisplayName returns the actor's name, falling back to the identifier.
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
