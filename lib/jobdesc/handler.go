package jobdeschandler

import (
	"context"
	"time"

	"jd-generator/lib/ai"
	ailogstore "jd-generator/lib/ai/ailog-store"
	"jd-generator/lib/jobdesc/prompt"
	jobdescmodels "jd-generator/models/api/jobdesc"
	dbmodels "jd-generator/models/db"

	log "github.com/sirupsen/logrus"
)

const generationErrorPrefix = "Error generating job description: "

type Provider interface {
	BuildPrompt(fields *jobdescmodels.FieldSet) (string, error)
	Generate(ctx context.Context, fields *jobdescmodels.FieldSet) (jobdescmodels.GenerateResponse, error)
}

var Instance Provider

func NewHandler(aiProvider ai.Provider, aiLogStore ailogstore.Provider, stripReasoning bool) {
	Instance = NewInstance(aiProvider, aiLogStore, stripReasoning)
}

func NewInstance(aiProvider ai.Provider, aiLogStore ailogstore.Provider, stripReasoning bool) Provider {
	return impl{
		ai:             aiProvider,
		aiLogStore:     aiLogStore,
		stripReasoning: stripReasoning,
	}
}

type impl struct {
	ai             ai.Provider
	aiLogStore     ailogstore.Provider
	stripReasoning bool
}

func (i impl) getLogger() *log.Entry {
	return log.
		WithField("ai", i.ai.Name()).
		WithField("model", i.ai.Model())
}

func (i impl) BuildPrompt(fields *jobdescmodels.FieldSet) (string, error) {
	return prompt.Build(fields)
}

// Generate ошибка возвращается только для незаполненной формы, ошибка генерации попадает в текст описания
func (i impl) Generate(ctx context.Context, fields *jobdescmodels.FieldSet) (resp jobdescmodels.GenerateResponse, err error) {
	userPrompt, err := prompt.Build(fields)
	if err != nil {
		return resp, err
	}
	resp.Prompt = userPrompt
	logger := i.getLogger().WithField("profile", fields.Profile().Name)

	logID := i.saveLog(logger, string(fields.Profile().Name), userPrompt)
	now := time.Now()
	answer, err := i.ai.Chat(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: prompt.SystemInstruction},
		{Role: ai.RoleUser, Content: userPrompt},
	})
	duration := time.Since(now)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка генерации описания вакансии")
		resp.Description = generationErrorPrefix + err.Error()
		i.updateLog(logger, logID, err.Error(), dbmodels.AiLogError, duration)
		return resp, nil
	}

	logger.
		WithField("answer_duration_sec", duration.Seconds()).
		Info("Ответ AI на запрос генерации описания вакансии")
	if i.stripReasoning {
		answer = ai.ExtractAnswer(answer)
	}
	resp.Description = answer
	i.updateLog(logger, logID, answer, dbmodels.AiLogResponse, duration)
	return resp, nil
}

func (i impl) saveLog(logger *log.Entry, profile, userPrompt string) string {
	id, err := i.aiLogStore.Save(dbmodels.AiLog{
		Profile:    profile,
		SysPromt:   prompt.SystemInstruction,
		UserPromt:  userPrompt,
		ReqestType: dbmodels.AiJobDescriptionType,
		AiName:     dbmodels.AiName(i.ai.Name()),
		Model:      i.ai.Model(),
		Status:     dbmodels.AiLogSent,
	})
	if err != nil {
		logger.
			WithError(err).
			Warn("ошибка сохранения журнала запроса к ИИ")
		return ""
	}
	return id
}

func (i impl) updateLog(logger *log.Entry, id, answer string, status dbmodels.AiLogStatus, duration time.Duration) {
	if id == "" {
		return
	}
	err := i.aiLogStore.Update(id, map[string]any{
		"answer":      answer,
		"status":      status,
		"duration_ms": duration.Milliseconds(),
	})
	if err != nil {
		logger.
			WithField("log_id", id).
			WithField("status", status).
			WithError(err).
			Warn("ошибка обновления журнала запроса к ИИ")
	}
}
