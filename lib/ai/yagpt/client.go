package yagptclient

import (
	"context"

	"jd-generator/lib/ai"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) (ai.Provider, error) {
	if token == "" || catalog == "" {
		return nil, errors.New("не указаны IAM токен или каталог для YandexGPT")
	}
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}, nil
}

func (i impl) Name() string {
	return "yandexgpt"
}

func (i impl) Model() string {
	return "yandexgpt-lite"
}

func (i impl) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.3,
			MaxTokens:   2000,
		},
		Messages: make([]yandexgptclient.YandexGPTMessage, 0, len(messages)),
	}
	for _, msg := range messages {
		role := yandexgptclient.YandexGPTMessageRoleUser
		if msg.Role == ai.RoleSystem {
			role = yandexgptclient.YandexGPTMessageRoleSystem
		}
		request.Messages = append(request.Messages, yandexgptclient.YandexGPTMessage{
			Role: role,
			Text: msg.Content,
		})
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "Ошибка при отправке запроса на генерацию в API YandexGPT")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("пустой ответ API YandexGPT")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}
