package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/pkg/validator"
	"github.com/spf13/viper"
)

const (
	ModeCLI      = "cli"
	ModeTelegram = "telegram"
)

type Config struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	API      APIConfig     `mapstructure:"api" validate:"required"`
	Mode     string        `mapstructure:"mode" validate:"oneof=cli telegram"`
	BotToken string        `mapstructure:"bot_token" validate:"required_if=Mode telegram"`
	History  HistoryConfig `mapstructure:"history"`
	DB       DBConfig      `mapstructure:"db" validate:"-"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	// Timeout bounds every backend call. Zero disables it.
	Timeout         time.Duration `mapstructure:"timeout" validate:"min=0"`
	DefaultLanguage string        `mapstructure:"default_language" validate:"required"`
	NotificationTTL time.Duration `mapstructure:"notification_ttl" validate:"min=1"`
	SpeechFeedback  bool          `mapstructure:"speech_feedback"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Limit   int  `mapstructure:"limit" validate:"min=1,max=100"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"mode":             "APP_MODE",
	"env":              "APP_ENV",
	"bot_token":        "BOT_TOKEN",
	"api.base_url":     "API_BASE_URL",
	"history.enabled":  "HISTORY_ENABLED",
	"db.conn.host":     "DB_HOST",
	"db.conn.port":     "DB_PORT",
	"db.conn.user":     "DB_USER",
	"db.conn.password": "DB_PASSWORD",
	"db.conn.name":     "DB_NAME",
	"db.conn.ssl":      "DB_SSL",
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}

	v.AddConfigPath(configPath)
	v.SetConfigName(configName)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.History.Enabled {
		if err := validator.ValidateStruct(cfg.DB); err != nil {
			return nil, fmt.Errorf("history is enabled but db config is invalid: %w", err)
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("mode", ModeCLI)
	v.SetDefault("app.timeout", 0)
	v.SetDefault("app.default_language", "Afrikaans")
	v.SetDefault("app.notification_ttl", 3*time.Second)
	v.SetDefault("app.speech_feedback", false)
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.limit", 10)
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
}
