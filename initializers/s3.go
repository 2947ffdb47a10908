package initializers

import (
	"context"
	"time"

	"jd-generator/config"
	s3client "jd-generator/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 копия сохраненного описания в S3 необязательна, при ошибке работаем без нее
func InitS3() {
	if !*config.Conf.S3.Enabled {
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = s3client.Ping(ctx, minioClient); err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}

	s3client.Client = minioClient
	log.Info("S3 клиент успешно инициализирован")
}
