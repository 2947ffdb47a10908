package initializers

import (
	"jd-generator/config"
	"jd-generator/db"
	ailogstore "jd-generator/lib/ai/ailog-store"

	log "github.com/sirupsen/logrus"
)

// InitDBConnection журнал запросов к ИИ ведется только при включенной БД
func InitDBConnection() ailogstore.Provider {
	if !*config.Conf.Database.Enabled {
		log.Info("БД отключена, журнал запросов к ИИ не ведется")
		return ailogstore.NewInstance(nil)
	}
	err := db.Connect(db.ConnectParams{
		Driver:     config.Conf.Database.Driver,
		Host:       config.Conf.Database.Host,
		Port:       config.Conf.Database.Port,
		Database:   config.Conf.Database.Name,
		User:       config.Conf.Database.User,
		Pass:       config.Conf.Database.Password,
		SqlitePath: config.Conf.Database.SqlitePath,
		DebugMode:  *config.Conf.Database.DebugMode,
		Migrate:    *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}
	if err = db.PingDB(); err != nil {
		panic(err.Error())
	}
	return ailogstore.NewInstance(db.DB)
}
