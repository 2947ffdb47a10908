package aiapimodels

import (
	"time"

	dbmodels "jd-generator/models/db"
)

type AiLogView struct {
	ID         string               `json:"id"`
	CreatedAt  time.Time            `json:"created_at"`
	Profile    string               `json:"profile"`
	SysPromt   string               `json:"sys_promt"`
	UserPromt  string               `json:"user_promt"`
	Answer     string               `json:"answer"`
	AiName     dbmodels.AiName      `json:"ai_name"`
	Model      string               `json:"model"`
	Status     dbmodels.AiLogStatus `json:"status"`
	DurationMs int64                `json:"duration_ms"`
}

func AiLogConvert(rec dbmodels.AiLog) AiLogView {
	return AiLogView{
		ID:         rec.ID,
		CreatedAt:  rec.CreatedAt,
		Profile:    rec.Profile,
		SysPromt:   rec.SysPromt,
		UserPromt:  rec.UserPromt,
		Answer:     rec.Answer,
		AiName:     rec.AiName,
		Model:      rec.Model,
		Status:     rec.Status,
		DurationMs: rec.DurationMs,
	}
}
