package chat

import (
	"context"
	"strings"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

// FallbackReply is shown when the chatbot backend cannot answer.
const FallbackReply = "Sorry, I could not fetch a response. Try again later."

// UseCase relays widget messages to the chatbot endpoint. The exchange is
// stateless and independent of the rest of the dashboard.
type UseCase struct {
	api *insurai.Client
	log *logger.Logger
}

// New builds the chat use case.
func New(api *insurai.Client, log *logger.Logger) *UseCase {
	return &UseCase{api: api, log: log}
}

// Send relays one message. Failures degrade to the canned fallback reply so
// the widget never surfaces a raw error.
func (uc *UseCase) Send(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return FallbackReply
	}
	reply, err := uc.api.ChatMessage(ctx, message)
	if err != nil {
		uc.log.Warn().Err(err).Msg("chatbot exchange failed")
		return FallbackReply
	}
	if reply == "" {
		return FallbackReply
	}
	return reply
}
