package response

type ChatResponse struct {
	Response string `json:"response"`
}

type ChatErrorResponse struct {
	Error string `json:"error"`
}
