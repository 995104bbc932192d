package entity

// Role of an authenticated user, as issued by the backend.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleAgent    Role = "AGENT"
)

// Valid reports whether the role is one the dashboard knows how to route.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleAgent:
		return true
	}
	return false
}

// Session is the client-held proof of authentication plus cached identity
// attributes. EmployeeID is set only for EMPLOYEE logins that carried one.
type Session struct {
	Token      string
	Username   string
	Role       Role
	UserID     int64
	EmployeeID *int64
}

// Authenticated reports whether a token is present. No validity check happens
// here; a stale token is only discovered when the backend rejects it.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
