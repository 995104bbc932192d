package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/auth"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// AuthHandler serves the login and signup pages and their form posts.
type AuthHandler struct {
	uc    *auth.UseCase
	guard *Guard
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.UseCase, guard *Guard) *AuthHandler {
	return &AuthHandler{uc: uc, guard: guard}
}

// LoginPage renders the login form. An already-authenticated visitor is sent
// straight to their dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if sess := SessionFrom(c); sess.Authenticated() {
		return c.Redirect(dashboardPath(sess.Role), fiber.StatusSeeOther)
	}
	data := pageData(c)
	data["Username"] = ""
	return c.Render("login", data)
}

// Login handles the credential post. On success the session cookie is set and
// the visitor lands on the dashboard their role maps to.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		data := pageData(c)
		data["Error"] = "Username and password are required."
		data["Username"] = username
		return c.Render("login", data)
	}

	sid, sess, err := h.uc.Login(c.UserContext(), SIDFrom(c), username, password)
	if err != nil {
		data := pageData(c)
		data["Error"] = userMessage(err)
		data["Username"] = username
		return c.Render("login", data)
	}

	h.guard.SetCookie(c, sid)
	return c.Redirect(dashboardPath(sess.Role), fiber.StatusSeeOther)
}

// SignupPage renders the registration form.
func (h *AuthHandler) SignupPage(c *fiber.Ctx) error {
	data := pageData(c)
	data["Username"] = ""
	data["Email"] = ""
	data["Role"] = ""
	return c.Render("signup", data)
}

// Signup handles the registration post. Success goes back to the login page;
// the new account is never signed in implicitly.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	role := entity.Role(c.FormValue("role"))

	render := func(msg string) error {
		data := pageData(c)
		data["Error"] = msg
		data["Username"] = username
		data["Email"] = email
		data["Role"] = string(role)
		return c.Render("signup", data)
	}

	if username == "" || email == "" || password == "" {
		return render("All fields are required.")
	}
	if !role.Valid() {
		return render("Pick a valid role.")
	}
	if err := h.uc.Signup(c.UserContext(), username, email, password, role); err != nil {
		return render(userMessage(err))
	}
	return redirectSuccess(c, "/login", "Account created. Sign in to continue.")
}

// Logout tears down the session and returns to the login page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Best effort: the cookie is cleared regardless, and a dangling hash
	// expires on its own TTL.
	_ = h.uc.Logout(c.UserContext(), SIDFrom(c))
	h.guard.ExpireCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
