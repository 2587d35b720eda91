package assistant

import "context"

// MockAssistant is a mock implementation for testing
type MockAssistant struct {
	ReplyFunc func(ctx context.Context, message string) (string, error)
}

var _ IAssistant = (*MockAssistant)(nil)

func NewMockAssistant() *MockAssistant {
	return &MockAssistant{}
}

func (m *MockAssistant) Reply(ctx context.Context, message string) (string, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, message)
	}
	return "", nil
}
