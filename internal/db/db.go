package db

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

// Connect opens postgres for postgres:// DSNs and the pure-Go sqlite driver
// for anything else (local runs and tests).
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: newGormLogger(os.Stdout)}

	if IsPostgres(dsn) {
		cfg.PrepareStmt = true
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// a single connection keeps ":memory:" databases alive and shared
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// newGormLogger keeps slow queries and real errors; a missing row is a normal
// lookup result.
func newGormLogger(w io.Writer) gormlogger.Interface {
	return gormlogger.New(
		stdlog.New(w, "\r\n", stdlog.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.ProProfile{},
		&models.ProPortfolioItem{},
		&models.Project{},
		&models.ProjectPhase{},
		&models.ProjectPhoto{},
		&models.ProjectCost{},
		&models.ProjectRequest{},
		&models.AuditLog{},
	)
}

func NewDB(dsn string, log *zap.Logger) *gorm.DB {
	db, err := Connect(dsn)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if IsPostgres(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("failed to get sql.DB", zap.Error(err))
		}

		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}
