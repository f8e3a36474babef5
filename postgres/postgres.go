package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/enumlist"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// PG Docs: https://www.postgresql.org/docs/current/libpq-connect.html#LIBPQ-PARAMKEYWORDS
const cxnStr = "host=%s port=%s dbname=%s user=%s password=%s sslmode=%s"

const (
	dbHostEnvVar         = "DATABASE_HOST"
	defaultDBHost        = "localhost"
	dbNameEnvVar         = "DATABASE_NAME"
	dbPassEnvVar         = "DATABASE_PASSWORD"
	dbPortEnvVar         = "DATABASE_PORT"
	defaultDBPort        = "5432"
	dbSSLModeEnvVar      = "DATABASE_SSLMODE"
	defaultDBSSLMode     = "prefer"
	dbURLEnvVar          = "DATABASE_URL"
	dbUserEnvVar         = "DATABASE_USER"
	dbMaxIdleCxnsEnvVar  = "DATABASE_MAX_IDLE_CXNS"
	defaultDBMaxIdleCxns = 1

	dbTestHostEnvVar    = "DATABASE_TEST_HOST"
	DBTestNameEnvVar    = "DATABASE_TEST_NAME"
	dbTestPassEnvVar    = "DATABASE_TEST_PASSWORD"
	dbTestPortEnvVar    = "DATABASE_TEST_PORT"
	dbTestSSLModeEnvVar = "DATABASE_TEST_SSLMODE"
	dbTestUserEnvVar    = "DATABASE_TEST_USER"

	// DefaultSchema is the schema Connect migrates and WipeDB truncates by default.
	DefaultSchema = "public"
)

// CxnConfig holds connection information used to connect to a PostgreSQL database.
type CxnConfig struct {
	IsTestDB    bool
	URL         string
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxIdleCxns int
}

// NewCxnConfig constructs a *CxnConfig appropriate to the given environment.
//
// In Testing, the DATABASE_TEST_* env vars are read.
// Otherwise, DATABASE_URL is used when set, and the DATABASE_* env vars when not.
func NewCxnConfig(env enumlist.Environment) *CxnConfig {
	var cfg *CxnConfig
	url := os.Getenv(dbURLEnvVar)
	switch {
	case env.IsTesting():
		cfg = &CxnConfig{
			Host:     enumlist.EnvVarOrString(dbTestHostEnvVar, defaultDBHost),
			IsTestDB: true,
			Name:     os.Getenv(DBTestNameEnvVar),
			Password: os.Getenv(dbTestPassEnvVar),
			Port:     enumlist.EnvVarOrString(dbTestPortEnvVar, defaultDBPort),
			SSLMode:  enumlist.EnvVarOrString(dbTestSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbTestUserEnvVar),
		}

	case url == "":
		cfg = &CxnConfig{
			Host:     enumlist.EnvVarOrString(dbHostEnvVar, defaultDBHost),
			Name:     os.Getenv(dbNameEnvVar),
			Password: os.Getenv(dbPassEnvVar),
			Port:     enumlist.EnvVarOrString(dbPortEnvVar, defaultDBPort),
			SSLMode:  enumlist.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbUserEnvVar),
		}

	default:
		cfg = &CxnConfig{URL: url}
	}

	cfg.MaxIdleCxns = enumlist.EnvVarOrInt(dbMaxIdleCxnsEnvVar, defaultDBMaxIdleCxns)

	return cfg
}

// DSN renders the connection string for config.
// URL wins over the individual fields when set.
func (config *CxnConfig) DSN() string {
	if config.URL != "" {
		return config.URL
	}

	sslMode := config.SSLMode
	if sslMode == "" {
		// PG Docs: https://www.postgresql.org/docs/current/libpq-ssl.html#LIBPQ-SSL-SSLMODE-STATEMENTS
		sslMode = defaultDBSSLMode
	}

	return fmt.Sprintf(
		cxnStr,
		config.Host,
		config.Port,
		config.Name,
		config.User,
		config.Password,
		sslMode,
	)
}

// Connect creates a database connection through GORM according to the connection config and runs all migrations.
//
// When config.IsTestDB, the public schema is dropped first.
func Connect(config *CxnConfig, migrations []Migration, env enumlist.Environment, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}

	// https://gorm.io/docs/logger.html
	c := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  env.IsDevelopment(),
	}

	gdb, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.New(slogWriter{log}, c),
		NamingStrategy: schema.NamingStrategy{
			NameReplacer: strings.NewReplacer("Table", ""),
		},
		NowFunc: func() time.Time {
			return time.Now().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed opening connection: %s", enumlist.ErrUnexpected, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", enumlist.ErrUnexpected, err)
	}

	if config.MaxIdleCxns > 0 {
		sqlDB.SetMaxIdleConns(config.MaxIdleCxns)
	}

	if config.IsTestDB {
		if err := gdb.Exec("DROP SCHEMA IF EXISTS public CASCADE;").Error; err != nil {
			return nil, fmt.Errorf("%w: %s", enumlist.ErrUnexpected, err)
		}
	}

	if err := MigrateUp(gdb, DefaultSchema, migrations); err != nil {
		return nil, err
	}

	log.Debug("connected to database", slog.String("host", config.Host), slog.Int("migrations", len(migrations)))

	return NewDB(gdb), nil
}

// WipeDB queries for all of the tables in schema and then drops the data in these tables.
func WipeDB(db *gorm.DB, schema string) error {
	var tables []string
	err := db.
		Table("information_schema.tables").
		Select("table_name").
		Where("table_schema = ?", schema).
		Not("table_type = ?", "VIEW").
		Pluck("table_name", &tables).
		Error
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		return nil
	}

	return db.Exec(fmt.Sprintf("TRUNCATE %s CASCADE;", strings.Join(tables, ", "))).Error
}

// slogWriter hands GORM's log lines to a *slog.Logger.
type slogWriter struct {
	l *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.l.Log(context.Background(), slog.LevelWarn, strings.TrimSpace(fmt.Sprintf(format, args...)))
}
