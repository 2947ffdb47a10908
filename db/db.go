package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type ConnectParams struct {
	Driver     string
	Host       string
	Port       string
	Database   string
	User       string
	Pass       string
	SqlitePath string
	DebugMode  bool
	Migrate    bool
}

func dialector(p ConnectParams) (gorm.Dialector, error) {
	switch p.Driver {
	case DriverPostgres, "":
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", p.Host, p.Port, p.User, p.Database, p.Pass)
		return postgres.Open(dbConnString), nil
	case DriverSqlite:
		return sqlite.Open(p.SqlitePath), nil
	default:
		return nil, errors.Errorf("неизвестный драйвер БД: %s", p.Driver)
	}
}

func Connect(p ConnectParams) (err error) {
	if DB != nil {
		return nil
	}
	d, err := dialector(p)
	if err != nil {
		return err
	}
	db, err := gorm.Open(d, &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	if p.DebugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		DB = db.Debug()
	} else {
		DB = db
	}
	if p.Migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.WithField("driver", p.Driver).Info("Сервис успешно подключен к БД")
	return nil
}

func PingDB() error {
	if DB == nil {
		return errors.New("нет подключения к БД")
	}
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return errors.Wrap(err, "БД не отвечает")
	}
	return nil
}
