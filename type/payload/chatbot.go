package payload

type ChatbotPayload struct {
	Message string `json:"message" validate:"required"`
}
