package insurai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// AgentAppointments lists the appointments booked with one agent.
func (c *Client) AgentAppointments(ctx context.Context, tok string, agentID int64) ([]entity.Appointment, error) {
	var out []entity.Appointment
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/appointments/agent/%d", agentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeAppointments lists the appointments one employee booked.
func (c *Client) EmployeeAppointments(ctx context.Context, tok string, employeeID int64) ([]entity.Appointment, error) {
	var out []entity.Appointment
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/appointments/employee/%d", employeeID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AgentSlots lists the open slots the backend derives for an agent over the
// next days. The window is the backend's to define.
func (c *Client) AgentSlots(ctx context.Context, tok string, agentID int64) ([]entity.AppointmentSlot, error) {
	var out []entity.AppointmentSlot
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/appointments/agent/%d/slots", agentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScheduleRequest books one slot. StartTime and EndTime must be exactly the
// chosen slot's; the backend resolves conflicts.
type ScheduleRequest struct {
	EmployeeID   int64           `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	AgentID      int64           `json:"agentId"`
	StartTime    entity.DateTime `json:"startTime"`
	EndTime      entity.DateTime `json:"endTime"`
	Notes        string          `json:"notes"`
}

// ScheduleAppointment books an appointment.
func (c *Client) ScheduleAppointment(ctx context.Context, tok string, in ScheduleRequest) error {
	return c.sendJSON(ctx, tok, http.MethodPost, "/appointments/schedule", in, nil)
}

// UpdateAppointmentStatus requests an appointment status transition.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, tok string, appointmentID int64, status entity.AppointmentStatus) error {
	path := fmt.Sprintf("/appointments/%d/status?status=%s", appointmentID, url.QueryEscape(string(status)))
	return c.sendJSON(ctx, tok, http.MethodPut, path, nil, nil)
}
