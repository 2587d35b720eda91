package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sunthewhat/quick-cert-api/type/apperror"
)

const requestTimeout = 60 * time.Second

var ErrEmptyReply = errors.New("chat completion returned no choices")

// IAssistant answers one user message using the fixed rule prompt.
type IAssistant interface {
	Reply(ctx context.Context, message string) (string, error)
}

// OpenAIAssistant talks to any OpenAI-compatible chat completion endpoint.
type OpenAIAssistant struct {
	client      openai.Client
	model       string
	temperature float64
}

var _ IAssistant = (*OpenAIAssistant)(nil)

func NewOpenAIAssistant(baseURL string, apiKey string, model string, temperature float64, opts ...option.RequestOption) *OpenAIAssistant {
	options := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(requestTimeout),
	}
	options = append(options, opts...)

	return &OpenAIAssistant{
		client:      openai.NewClient(options...),
		model:       model,
		temperature: temperature,
	}
}

func (a *OpenAIAssistant) Reply(ctx context.Context, message string) (string, error) {
	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(RulePrompt),
			openai.UserMessage(message),
		},
		Model:       openai.ChatModel(a.model),
		Temperature: openai.Float(a.temperature),
	})
	if err != nil {
		return "", apperror.Unavailable("chat completion failed", err)
	}

	if len(completion.Choices) == 0 {
		return "", apperror.Unavailable("chat completion failed", ErrEmptyReply)
	}

	return completion.Choices[0].Message.Content, nil
}
