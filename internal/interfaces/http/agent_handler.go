package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/dashboard"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// AgentHandler serves the agent pages: assigned claims, appointments and the
// weekly free-time schedule.
type AgentHandler struct {
	uc    *dashboard.AgentUseCase
	guard *Guard
}

// NewAgentHandler builds the agent handler.
func NewAgentHandler(uc *dashboard.AgentUseCase, guard *Guard) *AgentHandler {
	return &AgentHandler{uc: uc, guard: guard}
}

// Dashboard renders the assigned claims page.
func (h *AgentHandler) Dashboard(c *fiber.Ctx) error {
	claims, err := h.uc.AssignedClaims(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("agent_dashboard", data)
	}
	data := pageData(c)
	data["Claims"] = claims
	return c.Render("agent_dashboard", data)
}

// AddNote appends a progress note to an assigned claim.
func (h *AgentHandler) AddNote(c *fiber.Ctx) error {
	claimID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/agent-dashboard", err)
	}
	if _, err := h.uc.AddNote(c.UserContext(), SessionFrom(c), int64(claimID), c.FormValue("note")); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/agent-dashboard", err)
	}
	return redirectSuccess(c, "/agent-dashboard", "Note added.")
}

// Appointments renders the agent's appointment list.
func (h *AgentHandler) Appointments(c *fiber.Ctx) error {
	appointments, err := h.uc.Appointments(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("agent_appointments", data)
	}
	data := pageData(c)
	data["Appointments"] = appointments
	return c.Render("agent_appointments", data)
}

// AppointmentStatus completes or cancels a scheduled appointment.
func (h *AgentHandler) AppointmentStatus(c *fiber.Ctx) error {
	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/agent-appointments", err)
	}
	status := entity.AppointmentStatus(c.FormValue("status"))
	if status != entity.AppointmentCompleted && status != entity.AppointmentCancelled {
		return c.Redirect("/agent-appointments?error=Pick+complete+or+cancel.", fiber.StatusSeeOther)
	}
	if _, err := h.uc.UpdateAppointmentStatus(c.UserContext(), SessionFrom(c), int64(appointmentID), status); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/agent-appointments", err)
	}
	return redirectSuccess(c, "/agent-appointments", "Appointment updated.")
}

// FreeTime renders the weekly availability schedule.
func (h *AgentHandler) FreeTime(c *fiber.Ctx) error {
	slots, err := h.uc.FreeTime(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("agent_free_time", data)
	}
	data := pageData(c)
	data["Slots"] = slots
	return c.Render("agent_free_time", data)
}

// SaveSlot handles the free-time form, creating or updating a weekly slot.
func (h *AgentHandler) SaveSlot(c *fiber.Ctx) error {
	in := dashboard.SlotInput{
		DayOfWeek: atoiForm(c, "dayOfWeek"),
		StartTime: c.FormValue("startTime"),
		EndTime:   c.FormValue("endTime"),
		Off:       c.FormValue("off") == "on" || c.FormValue("off") == "true",
	}
	if id := int64(atoiForm(c, "id")); id > 0 {
		in.ID = &id
	}
	if c.FormValue("dayOfWeek") == "" {
		in.DayOfWeek = -1
	}
	if _, err := h.uc.SaveSlot(c.UserContext(), SessionFrom(c), in); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/agent-free-time", err)
	}
	return redirectSuccess(c, "/agent-free-time", "Slot saved.")
}

// ToggleSlotOff flips a slot between available and off.
func (h *AgentHandler) ToggleSlotOff(c *fiber.Ctx) error {
	slotID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/agent-free-time", err)
	}
	if _, err := h.uc.ToggleSlotOff(c.UserContext(), SessionFrom(c), int64(slotID)); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/agent-free-time", err)
	}
	return redirectSuccess(c, "/agent-free-time", "Slot updated.")
}

// DeleteSlot removes a weekly slot.
func (h *AgentHandler) DeleteSlot(c *fiber.Ctx) error {
	slotID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/agent-free-time", err)
	}
	if _, err := h.uc.DeleteSlot(c.UserContext(), SessionFrom(c), int64(slotID)); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/agent-free-time", err)
	}
	return redirectSuccess(c, "/agent-free-time", "Slot removed.")
}
