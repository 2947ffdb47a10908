package initializers

import (
	"jd-generator/config"
	"jd-generator/lib/smtp"
)

func InitSmtp() {
	smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
}
