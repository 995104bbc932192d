package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/session"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

// UseCase handles login, signup and logout against the auth endpoints, and
// owns every write to the session store.
type UseCase struct {
	api      *insurai.Client
	sessions *session.Store
	log      *logger.Logger
}

// New builds the auth use case.
func New(api *insurai.Client, sessions *session.Store, log *logger.Logger) *UseCase {
	return &UseCase{api: api, sessions: sessions, log: log}
}

// Login exchanges credentials for a session. When sid is non-empty the
// existing session id is reused and its hash fully replaced, so nothing from
// a previous login survives; otherwise a fresh id is minted. employeeId is
// persisted only for EMPLOYEE logins that carried one.
func (uc *UseCase) Login(ctx context.Context, sid, username, password string) (string, *entity.Session, error) {
	out, err := uc.api.Login(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	if !out.Role.Valid() {
		uc.log.Warn().Str("role", string(out.Role)).Str("username", username).Msg("login with unroutable role")
		return "", nil, domain.ErrValidation
	}

	sess := entity.Session{
		Token:    out.Token,
		Username: out.Username,
		Role:     out.Role,
		UserID:   out.UserID,
	}
	if out.Role == entity.RoleEmployee && out.EmployeeID != nil {
		sess.EmployeeID = out.EmployeeID
	}

	if sid == "" {
		sid = uuid.NewString()
	}
	if err := uc.sessions.Set(ctx, sid, sess); err != nil {
		return "", nil, err
	}
	uc.log.Info().Str("username", out.Username).Str("role", string(out.Role)).Msg("login")
	return sid, &sess, nil
}

// Signup registers an account. It never authenticates: the user is sent back
// to the login page on success.
func (uc *UseCase) Signup(ctx context.Context, username, email, password string, role entity.Role) error {
	if !role.Valid() {
		return domain.ErrValidation
	}
	return uc.api.Signup(ctx, username, email, password, role)
}

// Logout clears the session hash. This is the only teardown path.
func (uc *UseCase) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return uc.sessions.Clear(ctx, sid)
}
