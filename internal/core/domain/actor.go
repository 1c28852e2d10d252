package domain

// Role is the marketplace role of the caller.
type Role string

const (
	RoleCreator Role = "creator"
	RoleBrand   Role = "brand"
	RoleAdmin   Role = "admin"
)

// Actor identifies who is issuing a command. The transport layer builds
// it from verified credentials and passes it into the usecase.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor is platform staff.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsCreator reports whether the actor is the given creator.
func (a Actor) IsCreator(creatorID string) bool {
	return a.Role == RoleCreator && a.ID != "" && a.ID == creatorID
}

// IsBrand reports whether the actor is the given brand.
func (a Actor) IsBrand(brandID string) bool {
	return a.Role == RoleBrand && a.ID != "" && a.ID == brandID
}
