package entity

// User is a backend account. Agents listed for claim assignment come through
// this shape (GET /users/role/AGENT).
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
