package chatbot_controller

import "github.com/sunthewhat/quick-cert-api/internal/assistant"

// ChatbotController proxies user messages to the certificate assistant
type ChatbotController struct {
	assistant assistant.IAssistant
}

func NewChatbotController(a assistant.IAssistant) *ChatbotController {
	return &ChatbotController{assistant: a}
}
