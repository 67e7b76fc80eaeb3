package database

import (
	"fmt"

	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/models"
	"github.com/Nascian/socialnetwork-backend/pkg/log"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(conf.Database)
	if err != nil {
		return nil, err
	}

	gormConf := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(conf.Database.MaxOpen)
	}
	if conf.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(conf.Database.MaxIdle)
	}
	if conf.Database.Driver == config.DriverSQLite {
		// sqlite allows one writer; a single connection avoids SQLITE_BUSY
		// on concurrent like transactions.
		sqlDB.SetMaxOpenConns(1)
	}

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db, nil
}

func Dialector(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverMySQL:
		return mysql.Open(conf.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(conf.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(conf.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// Migrate creates or updates the users, posts and likes tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
