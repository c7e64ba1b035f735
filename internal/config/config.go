package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"  validate:"required"`
	Logger  LoggerConfig  `yaml:"logger"  validate:"required"`
	Gin     GinConfig     `yaml:"gin"     validate:"required"`
	Mongo   MongoConfig   `yaml:"mongo"   validate:"required"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":5000" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level name to a wbf logger.Level.
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

// LogEngine maps the configured engine name to a wbf logger.Engine.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// MongoConfig describes the document store. URI is mandatory, startup fails without it.
type MongoConfig struct {
	URI                    string        `yaml:"uri"                      env:"MONGO_DB"                       env-required:"true" validate:"required"`
	Database               string        `yaml:"database"                 env:"MONGO_DATABASE"`
	ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout" env:"MONGO_SERVER_SELECTION_TIMEOUT" env-default:"5s"  validate:"gt=0"`
	SocketTimeout          time.Duration `yaml:"socket_timeout"           env:"MONGO_SOCKET_TIMEOUT"           env-default:"45s" validate:"gt=0"`
	MaxPoolSize            uint64        `yaml:"max_pool_size"            env:"MONGO_MAX_POOL_SIZE"            env-default:"100" validate:"min=1"`
	ConnectAttempts        int           `yaml:"connect_attempts"         env:"MONGO_CONNECT_ATTEMPTS"         env-default:"3"   validate:"min=1"`
	ConnectDelay           time.Duration `yaml:"connect_delay"            env:"MONGO_CONNECT_DELAY"            env-default:"1s"  validate:"gt=0"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-default:"*" env-separator:","`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
	// StatsInterval is how often collection sizes are refreshed. Zero disables the refresh.
	StatsInterval time.Duration `yaml:"stats_interval" env:"METRICS_STATS_INTERVAL" env-default:"1m"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
