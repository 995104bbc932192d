package insurai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
)

type chatRequest struct {
	Message string `json:"message"`
}

// ChatMessage sends one message to the chatbot endpoint and returns its
// reply. The exchange is stateless and needs no authentication; the reply is
// a plain string body.
func (c *Client) ChatMessage(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chatbot/message", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError(resp)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read chat reply: %w", err)
	}
	reply := strings.TrimSpace(string(body))
	// Some gateways wrap the reply in a JSON string.
	var unquoted string
	if json.Unmarshal(body, &unquoted) == nil {
		reply = unquoted
	}
	return reply, nil
}
