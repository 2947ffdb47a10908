package ollamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jd-generator/lib/ai"
	ollamamodels "jd-generator/models/api/ollama"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const chatPath = "/api/chat"

type impl struct {
	ollamaURL   string
	ollamaModel string
	client      *http.Client
}

func NewClient(url, model string) (ai.Provider, error) {
	i := &impl{
		ollamaURL:   strings.TrimRight(url, "/"),
		ollamaModel: model,
		// без таймаута: запрос ждет ответа модели сколько потребуется
		client: &http.Client{},
	}
	if err := i.checkConfig(); err != nil {
		return nil, err
	}
	return i, nil
}

func (i impl) Name() string {
	return "ollama"
}

func (i impl) Model() string {
	return i.ollamaModel
}

func (i impl) getLogger() *log.Entry {
	return log.
		WithField("ai", "ollama").
		WithField("model", i.ollamaModel)
}

func (i impl) checkConfig() error {
	if i.ollamaURL == "" {
		return errors.New("не указан url для ollama")
	}
	if i.ollamaModel == "" {
		return errors.New("не указана модель для ollama")
	}
	return nil
}

func (i impl) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	request := ollamamodels.ChatRequest{
		Model:    i.ollamaModel,
		Messages: make([]ollamamodels.ChatMessage, 0, len(messages)),
		Stream:   false,
	}
	for _, msg := range messages {
		request.Messages = append(request.Messages, ollamamodels.ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.ollamaURL+chatPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	now := time.Now()
	resp, err := i.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ошибка запроса к Ollama API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ollamamodels.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return "", fmt.Errorf("ошибка Ollama API: %s: %s", resp.Status, errResp.Error)
		}
		return "", fmt.Errorf("ошибка Ollama API: %s", resp.Status)
	}

	var ollamaResponse ollamamodels.ChatResponse
	err = json.Unmarshal(body, &ollamaResponse)
	if err != nil {
		return "", errors.Wrap(err, "некорректный ответ Ollama API")
	}

	i.getLogger().
		WithField("answer_duration_sec", time.Since(now).Seconds()).
		Debug("Ответ Ollama получен")
	return ollamaResponse.Message.Content, nil
}
