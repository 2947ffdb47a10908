package openaiclient

import (
	"context"
	"net/http"
	"strings"

	"jd-generator/lib/ai"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pkg/errors"
)

// impl клиент OpenAI-совместимого API (Ollama отдает его по /v1)
type impl struct {
	client openai.Client
	model  string
}

func NewClient(apiURL, apiKey, model string) (ai.Provider, error) {
	if strings.TrimSpace(apiURL) == "" {
		return nil, errors.New("не указан url для openai api")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("не указана модель для openai api")
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(apiURL),
		option.WithHTTPClient(&http.Client{}),
		option.WithMaxRetries(0),
	)
	return &impl{
		client: client,
		model:  model,
	}, nil
}

func (i impl) Name() string {
	return "openai"
}

func (i impl) Model() string {
	return i.model
}

func (i impl) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(i.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, msg := range messages {
		params.Messages = append(params.Messages, toChatMessageParam(msg))
	}

	resp, err := i.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "ошибка запроса к OpenAI API")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("пустой ответ OpenAI API")
	}
	return resp.Choices[0].Message.Content, nil
}

func toChatMessageParam(msg ai.Message) openai.ChatCompletionMessageParamUnion {
	switch msg.Role {
	case ai.RoleSystem:
		return openai.SystemMessage(msg.Content)
	case ai.RoleAssistant:
		return openai.AssistantMessage(msg.Content)
	default:
		return openai.UserMessage(msg.Content)
	}
}
