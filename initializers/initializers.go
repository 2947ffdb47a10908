package initializers

import (
	"context"

	"jd-generator/config"
	"jd-generator/fiberlog"
	ailogstore "jd-generator/lib/ai/ailog-store"
	filestorage "jd-generator/lib/file-storage"
	formsession "jd-generator/lib/form-session"
	jobdeschandler "jd-generator/lib/jobdesc"
	"jd-generator/models"
	jobdescmodels "jd-generator/models/api/jobdesc"
	s3client "jd-generator/s3"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	LoggerConfig *fiberlog.Config
	AiLogStore   ailogstore.Provider
	FormVariant  models.FormVariant
	FormProfile  jobdescmodels.Profile
)

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	if err := initForm(); err != nil {
		log.WithError(err).Fatal("ошибка настройки формы")
	}
	AiLogStore = InitDBConnection()
	InitS3()
	InitSmtp()
	formsession.Init()
	jobdeschandler.NewHandler(InitAiProvider(), AiLogStore, *config.Conf.AI.StripReasoning)
	filestorage.NewHandler(config.Conf.Output.FilePath, s3client.Client, config.Conf.S3.BucketName)
}

func initForm() error {
	FormVariant = models.FormVariant(config.Conf.Form.Variant)
	if !FormVariant.IsValid() {
		return errors.Errorf("неизвестный вариант формы: %s", config.Conf.Form.Variant)
	}
	name := jobdescmodels.ProfileName(config.Conf.Form.Profile)
	if name == "" {
		name = jobdescmodels.DefaultProfile(FormVariant)
	}
	profile, ok := jobdescmodels.GetProfile(name)
	if !ok {
		return errors.Errorf("неизвестный профиль формы: %s", name)
	}
	FormProfile = profile
	log.
		WithField("variant", FormVariant).
		WithField("profile", FormProfile.Name).
		Info("форма настроена")
	return nil
}
