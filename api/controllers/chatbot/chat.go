package chatbot_controller

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/quick-cert-api/internal/assistant"
	"github.com/sunthewhat/quick-cert-api/type/payload"
	"github.com/sunthewhat/quick-cert-api/type/response"
)

// Chat answers with a fallback reply instead of an error status whenever the
// message cannot be processed, so the chat widget always has text to show.
func (ctrl *ChatbotController) Chat(c *fiber.Ctx) error {
	body := new(payload.ChatbotPayload)

	if err := c.BodyParser(body); err != nil {
		slog.Error("Chatbot failed to parse body", "error", err)
		return response.SendChat(c, assistant.FallbackReply)
	}

	message := strings.TrimSpace(body.Message)
	if message == "" {
		return response.SendChatFailed(c, "No message provided")
	}

	reply, err := ctrl.assistant.Reply(c.UserContext(), message)
	if err != nil {
		slog.Error("Chatbot reply failed", "error", err)
		return response.SendChat(c, assistant.FallbackReply)
	}

	return response.SendChat(c, reply)
}
