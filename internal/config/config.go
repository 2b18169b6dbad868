package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"       validate:"required"`
	Logger       LoggerConfig       `yaml:"logger"       validate:"required"`
	Gin          GinConfig          `yaml:"gin"          validate:"required"`
	Postgres     PostgresConfig     `yaml:"postgres"     validate:"required"`
	Auth         AuthConfig         `yaml:"auth"         validate:"required"`
	CORS         CORSConfig         `yaml:"cors"`
	Uploads      UploadsConfig      `yaml:"uploads"      validate:"required"`
	Registration RegistrationConfig `yaml:"registration" validate:"required"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"    validate:"required"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	UPI          UPIConfig          `yaml:"upi"          validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host         string `yaml:"host"           env:"DB_HOST"           env-default:"localhost" validate:"required"`
	Port         int    `yaml:"port"           env:"DB_PORT"           env-default:"5432"      validate:"required,min=1,max=65535"`
	User         string `yaml:"user"           env:"DB_USER"           env-default:"postgres"  validate:"required"`
	Password     string `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"  validate:"required"`
	Database     string `yaml:"database"       env:"DB_NAME"           env-default:"eventpass" validate:"required"`
	SSLMode      string `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"        validate:"min=1"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"         validate:"min=1"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// AuthConfig задаёт проверку bearer-токенов. Токены выпускает внешний сервис.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
	Issuer    string `yaml:"issuer"     env:"AUTH_ISSUER"     env-default:""`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type UploadsConfig struct {
	Provider      string `yaml:"provider"        env:"UPLOADS_PROVIDER"        env-default:"disk"                          validate:"required,oneof=disk"`
	Dir           string `yaml:"dir"             env:"UPLOADS_DIR"             env-default:"uploads"                       validate:"required"`
	PublicBaseURL string `yaml:"public_base_url" env:"UPLOADS_PUBLIC_BASE_URL" env-default:"http://localhost:8080/uploads" validate:"required"`
	MaxSizeBytes  int64  `yaml:"max_size_bytes"  env:"UPLOADS_MAX_SIZE_BYTES"  env-default:"5242880"                       validate:"gt=0"`
}

type RegistrationConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" env:"REGISTRATION_POLL_INTERVAL" env-default:"10s" validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval   time.Duration `yaml:"interval"    env:"SCHEDULER_INTERVAL"    env-default:"15m" validate:"required,gt=0"`
	StaleAfter time.Duration `yaml:"stale_after" env:"SCHEDULER_STALE_AFTER" env-default:"24h" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken        string `yaml:"bot_token"         env:"TELEGRAM_BOT_TOKEN"         env-default:""`
	VerifiersChatID int64  `yaml:"verifiers_chat_id" env:"TELEGRAM_VERIFIERS_CHAT_ID" env-default:"0"`
}

type UPIConfig struct {
	PayeeName string `yaml:"payee_name" env:"UPI_PAYEE_NAME" env-default:"EventPass" validate:"required"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
