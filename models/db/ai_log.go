package dbmodels

type AiLog struct {
	BaseModel
	Profile    string       `gorm:"type:varchar(50)" comment:"Профиль формы"`
	SysPromt   string       `comment:"System промт"`
	UserPromt  string       `comment:"User промт"`
	Answer     string       `comment:"Ответ ИИ"`
	ReqestType AiReqestType `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
	AiName     AiName       `gorm:"type:varchar(255)" comment:"Название ИИ"`
	Model      string       `gorm:"type:varchar(255)" comment:"Модель"`
	Status     AiLogStatus  `gorm:"type:varchar(50)" comment:"Статус запроса"`
	DurationMs int64        `comment:"Длительность запроса, мс"`
}

type AiName string

const (
	AiOllamaType AiName = "ollama"
	AiOpenAIType AiName = "openai"
	AiYaGptType  AiName = "yandexgpt"
)

type AiReqestType string

const (
	AiJobDescriptionType AiReqestType = "JobDescription"
)

type AiLogStatus string

const (
	AiLogSent     AiLogStatus = "sent"
	AiLogResponse AiLogStatus = "response"
	AiLogError    AiLogStatus = "error"
)
