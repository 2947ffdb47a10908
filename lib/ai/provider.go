package ai

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// Provider синхронный запрос к модели: без таймаута, ретраев и стриминга
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
	Model() string
}
