package insurai

import (
	"context"
	"net/http"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// LoginResponse is the backend's answer to a successful login. EmployeeID is
// present only for EMPLOYEE accounts.
type LoginResponse struct {
	Token      string      `json:"token"`
	Username   string      `json:"username"`
	Role       entity.Role `json:"role"`
	UserID     int64       `json:"userId"`
	EmployeeID *int64      `json:"employeeId,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a token plus cached identity attributes.
// A 401 surfaces as domain.ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	in := loginRequest{Username: username, Password: password}
	if err := c.sendJSON(ctx, "", http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account. It does not authenticate; the backend
// answers 400 with a plain-text reason on duplicate username or email.
func (c *Client) Signup(ctx context.Context, username, email, password string, role entity.Role) error {
	in := signupRequest{Username: username, Email: email, Password: password, Role: string(role)}
	return c.sendJSON(ctx, "", http.MethodPost, "/auth/signup", in, nil)
}
