package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/quick-cert-api/api/controllers/certificate"
	chatbot_controller "github.com/sunthewhat/quick-cert-api/api/controllers/chatbot"
	static_controller "github.com/sunthewhat/quick-cert-api/api/controllers/static"
)

// Controllers bundles every handler group mounted by Init.
type Controllers struct {
	Certificate *certificate_controller.CertificateController
	Chatbot     *chatbot_controller.ChatbotController
	Static      *static_controller.StaticController
}

func Init(router fiber.Router, ctrls Controllers) {
	SetupStaticRoutes(router, ctrls.Static)
	SetupCertificateRoutes(router, ctrls.Certificate)
	SetupChatbotRoutes(router, ctrls.Chatbot)
}
