package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	// Logger nil = глобальный logrus
	Logger *logrus.Logger
	// Tags набор полей записи, см. Tag* константы
	Tags []string
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
