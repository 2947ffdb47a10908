package db

import (
	dbmodels "jd-generator/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.AiLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AiLog")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
