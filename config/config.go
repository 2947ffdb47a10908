package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Form struct {
		Variant string `default:"submit" env:"FORM_VARIANT"` // submit | auto
		Profile string `default:"" env:"FORM_PROFILE"`       // full | basic, пусто = по варианту
	}
	AI struct {
		Provider       string `default:"ollama" env:"AI_PROVIDER"` // ollama | openai | yandexgpt
		StripReasoning *bool  `default:"true" env:"AI_STRIP_REASONING"`
		Ollama         struct {
			OllamaURL   string `default:"http://127.0.0.1:11434" env:"OLLAMA_URL"`
			OllamaModel string `default:"deepseek-r1:1.5b" env:"OLLAMA_MODEL"`
		}
		OpenAI struct {
			APIURL string `default:"http://127.0.0.1:11434/v1" env:"OPENAI_API_URL"`
			APIKey string `default:"ollama" env:"OPENAI_API_KEY"`
			Model  string `default:"deepseek-r1:1.5b" env:"OPENAI_MODEL"`
		}
		YandexGPT struct {
			IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
		}
	}
	Output struct {
		FilePath string `default:"job_description.md" env:"OUTPUT_FILE_PATH"`
	}
	Database struct {
		Enabled        *bool  `default:"false" env:"DB_ENABLED"`
		Driver         string `default:"postgres" env:"DB_DRIVER"` // postgres | sqlite
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"jd-generator" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		SqlitePath     string `default:"jd-generator.db" env:"DB_SQLITE_PATH"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Enabled         *bool  `default:"false" env:"S3_ENABLED"`
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"job-descriptions" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
