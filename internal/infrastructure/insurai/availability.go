package insurai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// AgentAvailability lists an agent's weekly availability slots.
func (c *Client) AgentAvailability(ctx context.Context, tok string, agentID int64) ([]entity.AvailabilitySlot, error) {
	var out []entity.AvailabilitySlot
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/agent-availability/agent/%d", agentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveSlotRequest creates a slot, or updates one when ID is set. Overlap
// checks are entirely the backend's.
type SaveSlotRequest struct {
	ID        *int64 `json:"id"`
	AgentID   int64  `json:"agentId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Off       bool   `json:"off"`
}

// SaveAvailability creates or updates a weekly slot.
func (c *Client) SaveAvailability(ctx context.Context, tok string, in SaveSlotRequest) error {
	return c.sendJSON(ctx, tok, http.MethodPost, "/agent-availability/save", in, nil)
}

// ToggleAvailabilityOff flips a slot's off flag.
func (c *Client) ToggleAvailabilityOff(ctx context.Context, tok string, slotID int64) error {
	return c.sendJSON(ctx, tok, http.MethodPost, fmt.Sprintf("/agent-availability/toggle-off/%d", slotID), nil, nil)
}

// DeleteAvailability removes a slot.
func (c *Client) DeleteAvailability(ctx context.Context, tok string, slotID int64) error {
	return c.sendJSON(ctx, tok, http.MethodDelete, fmt.Sprintf("/agent-availability/%d", slotID), nil, nil)
}
