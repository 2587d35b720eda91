package routes

import (
	"github.com/gofiber/fiber/v2"
	chatbot_controller "github.com/sunthewhat/quick-cert-api/api/controllers/chatbot"
)

func SetupChatbotRoutes(router fiber.Router, ctrl *chatbot_controller.ChatbotController) {
	router.Get("chatbot", ctrl.Chat)
	router.Post("chatbot", ctrl.Chat)
}
