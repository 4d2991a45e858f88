package user

const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
	RoleAdmin     = "admin"
)

type User struct {
	UUID     string
	Username string
	Email    string
	Role     string
}

// Actor is the authenticated caller of a service operation, as resolved by
// the JWT middleware.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
