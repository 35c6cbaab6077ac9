package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env  string `envconfig:"ENV" default:"development" validate:"oneof=development production test"`
	Port string `envconfig:"PORT" default:"3000" validate:"required,numeric"`

	// DBDSN wins over the DB_HOST/DB_* parts when set.
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite" validate:"oneof=sqlite mysql"`
	DBDSN      string `envconfig:"DB_DSN"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost" validate:"required_if=DBDriver mysql"`
	DBPort     int    `envconfig:"DB_PORT" default:"3306" validate:"gt=0,lt=65536"`
	DBUser     string `envconfig:"DB_USER" default:"root" validate:"required_if=DBDriver mysql"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"videobelajar_db" validate:"required_if=DBDriver mysql"`
	DBTimezone string `envconfig:"DB_TIMEZONE" default:"+07:00"`

	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10" validate:"gte=0"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5" validate:"gte=0"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	DBBootstrap       bool          `envconfig:"DB_BOOTSTRAP" default:"true"`
	DBSeedDemo        bool          `envconfig:"DB_SEED_DEMO" default:"false"`

	LogFile  string `envconfig:"LOG_FILE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// HideStorageErrors replaces driver messages in 500 responses with a
	// generic text. They are still logged.
	HideStorageErrors bool `envconfig:"HIDE_STORAGE_ERRORS" default:"false"`

	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX" default:"120" validate:"gte=0"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	BodyLimit       int           `envconfig:"BODY_LIMIT" default:"1048576" validate:"gt=0"`
	CORSOrigins     string        `envconfig:"CORS_ORIGINS" default:"*"`
	DocsHost        string        `envconfig:"DOCS_HOST" default:"localhost:3000"`
}

// Load reads an optional .env, then the process environment. Variables
// already set in the environment are not overwritten by .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	log.Printf("[config] ENV=%s PORT=%s DB_DRIVER=%s LOG_LEVEL=%s LOG_FILE=%s",
		cfg.Env, cfg.Port, cfg.DBDriver, cfg.LogLevel, cfg.LogFile)
	return cfg, nil
}

var validate = validator.New()

func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
