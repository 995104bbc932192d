package http

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
)

// dashboardPath maps a role to its landing page.
func dashboardPath(role entity.Role) string {
	switch role {
	case entity.RoleAdmin:
		return "/admin-dashboard"
	case entity.RoleEmployee:
		return "/user-dashboard"
	case entity.RoleAgent:
		return "/agent-dashboard"
	}
	return "/login"
}

// pageData seeds the template payload with the session and any flash carried
// in the query string. Page handlers add their own keys on top.
func pageData(c *fiber.Ctx) fiber.Map {
	data := fiber.Map{"Session": SessionFrom(c)}
	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}
	if msg := c.Query("success"); msg != "" {
		data["Success"] = msg
	}
	return data
}

// redirectError sends the visitor back to path with a flash message.
func redirectError(c *fiber.Ctx, path string, err error) error {
	return c.Redirect(withQuery(path, "error", userMessage(err)), fiber.StatusSeeOther)
}

// redirectSuccess sends the visitor to path with a confirmation flash.
func redirectSuccess(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(withQuery(path, "success", msg), fiber.StatusSeeOther)
}

func withQuery(path, key, value string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + key + "=" + url.QueryEscape(value)
}

// userMessage translates an error into something fit for a page banner,
// preferring the backend's own wording when it sent one.
func userMessage(err error) string {
	var apiErr *insurai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		// Validation messages are written for the page; show the detail when
		// there is one.
		if detail := strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": "); detail != err.Error() && detail != "" {
			return strings.ToUpper(detail[:1]) + detail[1:] + "."
		}
		return "Please check the form and try again."
	case errors.Is(err, domain.ErrNotFound):
		return "The requested record was not found."
	case errors.Is(err, domain.ErrConflict):
		return "The record changed underneath you. Reload and retry."
	case errors.Is(err, domain.ErrUnavailable):
		return "The service is unreachable right now. Try again shortly."
	}
	return "Something went wrong. Please try again."
}

// atoiForm reads an integer form field, answering 0 when absent or malformed.
func atoiForm(c *fiber.Ctx, field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.FormValue(field)))
	if err != nil {
		return 0
	}
	return n
}

// sessionExpired reports whether the backend rejected the session token, in
// which case the only sane move is back to the login page.
func sessionExpired(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// bounce tears down the session and lands on the login page. Used when the
// backend starts rejecting the stored token mid-session.
func bounce(c *fiber.Ctx, g *Guard) error {
	if sid := SIDFrom(c); sid != "" {
		_ = g.store.Clear(c.UserContext(), sid)
	}
	g.ExpireCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
