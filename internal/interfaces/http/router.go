package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Guard    *Guard
	Auth     *AuthHandler
	Admin    *AdminHandler
	Employee *EmployeeHandler
	Agent    *AgentHandler
	Chat     *ChatHandler
}

// SetupRoutes mounts the full route table. Every page sits behind the guard
// except login and signup; anything unmatched lands on the login page.
func SetupRoutes(app *fiber.App, h Handlers) {
	app.Use(h.Guard.LoadSession())

	// Public pages.
	app.Get("/login", h.Auth.LoginPage)
	app.Post("/login", h.Auth.Login)
	app.Get("/signup", h.Auth.SignupPage)
	app.Post("/signup", h.Auth.Signup)
	app.Post("/logout", h.Guard.RequireAuth(), h.Auth.Logout)

	// Chat widget; rendered on every authenticated page.
	app.Post("/api/chat", h.Guard.RequireAuth(), h.Chat.Message)

	// Admin.
	admin := h.Guard.RequireRole(entity.RoleAdmin)
	app.Get("/admin-dashboard", admin, h.Admin.Dashboard)
	app.Post("/admin/claims/:id/status", admin, h.Admin.ClaimStatus)
	app.Post("/admin/claims/:id/assign", admin, h.Admin.AssignAgent)
	app.Post("/admin/claims/:id/settle", admin, h.Admin.SettleClaim)
	app.Get("/policy-management", admin, h.Admin.PolicyManagement)
	app.Post("/admin/policies", admin, h.Admin.SavePolicy)
	app.Post("/admin/policies/:id", admin, h.Admin.SavePolicy)
	app.Post("/admin/policies/:id/delete", admin, h.Admin.DeletePolicy)
	app.Post("/admin/policies/:id/assign", admin, h.Admin.AssignPolicy)

	// Employee.
	employee := h.Guard.RequireRole(entity.RoleEmployee)
	app.Get("/user-dashboard", employee, h.Employee.Dashboard)
	app.Get("/employee-claims", employee, h.Employee.Claims)
	app.Post("/employee-claims", employee, h.Employee.SubmitClaim)
	app.Post("/employee-claims/:id/add-files", employee, h.Employee.AddClaimFiles)
	app.Get("/employee-policies", employee, h.Employee.Policies)
	app.Get("/employee-appointments", employee, h.Employee.Appointments)
	app.Get("/book-appointment", employee, h.Employee.Booking)
	app.Post("/book-appointment", employee, h.Employee.Book)

	// Agent.
	agent := h.Guard.RequireRole(entity.RoleAgent)
	app.Get("/agent-dashboard", agent, h.Agent.Dashboard)
	app.Post("/agent/claims/:id/notes", agent, h.Agent.AddNote)
	app.Get("/agent-appointments", agent, h.Agent.Appointments)
	app.Post("/agent/appointments/:id/status", agent, h.Agent.AppointmentStatus)
	app.Get("/agent-free-time", agent, h.Agent.FreeTime)
	app.Post("/agent-free-time", agent, h.Agent.SaveSlot)
	app.Post("/agent-free-time/:id/toggle-off", agent, h.Agent.ToggleSlotOff)
	app.Post("/agent-free-time/:id/delete", agent, h.Agent.DeleteSlot)

	// Everything else, the root included, falls back to the login page. An
	// authenticated visitor gets bounced on from there to their dashboard.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusSeeOther)
	})
}
