package response

type ErrorResponse struct {
	Status  string  `json:"status"`
	Message *string `json:"message,omitempty"`
}

func Error(msg any) *ErrorResponse {
	if message, ok := msg.(string); ok {
		return &ErrorResponse{
			Status:  StatusError,
			Message: &message,
		}
	}
	unknown := "Unknown Error"
	return &ErrorResponse{
		Status:  StatusError,
		Message: &unknown,
	}
}
