package initializers

import (
	"jd-generator/config"
	"jd-generator/lib/ai"
	ollamaclient "jd-generator/lib/ai/ollama"
	openaiclient "jd-generator/lib/ai/openai"
	yagptclient "jd-generator/lib/ai/yagpt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	AiProviderOllama    = "ollama"
	AiProviderOpenAI    = "openai"
	AiProviderYandexGPT = "yandexgpt"
)

func InitAiProvider() ai.Provider {
	provider, err := newAiProvider(config.Conf.AI.Provider)
	if err != nil {
		log.WithError(err).Fatal("ошибка инициализации клиента ИИ")
	}
	log.
		WithField("ai", provider.Name()).
		WithField("model", provider.Model()).
		Info("клиент ИИ инициализирован")
	return provider
}

func newAiProvider(name string) (ai.Provider, error) {
	switch name {
	case AiProviderOllama, "":
		return ollamaclient.NewClient(config.Conf.AI.Ollama.OllamaURL, config.Conf.AI.Ollama.OllamaModel)
	case AiProviderOpenAI:
		return openaiclient.NewClient(config.Conf.AI.OpenAI.APIURL, config.Conf.AI.OpenAI.APIKey, config.Conf.AI.OpenAI.Model)
	case AiProviderYandexGPT:
		return yagptclient.NewClient(config.Conf.AI.YandexGPT.IAMToken, config.Conf.AI.YandexGPT.CatalogID)
	}
	return nil, errors.Errorf("неизвестный провайдер ИИ: %s", name)
}
