package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/chat"
)

// ChatHandler is the JSON endpoint behind the floating chat widget.
type ChatHandler struct {
	uc *chat.UseCase
}

// NewChatHandler builds the chat handler.
func NewChatHandler(uc *chat.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Message relays one widget message and always answers 200 with a reply; a
// failing chatbot degrades to the canned fallback, never an error page.
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var in chatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(chatResponse{Reply: chat.FallbackReply})
	}
	return c.JSON(chatResponse{Reply: h.uc.Send(c.UserContext(), in.Message)})
}
