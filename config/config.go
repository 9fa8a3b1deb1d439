package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Analysis AnalysisConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// AnalysisConfig controls the simulated processing pause before a
// prediction or report analysis is returned. Zero disables it.
type AnalysisConfig struct {
	Delay time.Duration
}

// SMTPConfig carries the contact-form mail relay settings. There are
// deliberately no defaults: without configuration the contact endpoint
// refuses to send instead of using a baked-in account.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running on environment variables alone is fine.
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	expiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = 7 * 24 * time.Hour
	}

	delay := 2 * time.Second
	if viper.IsSet("ANALYSIS_DELAY") {
		if d, err := time.ParseDuration(viper.GetString("ANALYSIS_DELAY")); err == nil {
			delay = d
		}
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		Analysis: AnalysisConfig{
			Delay: delay,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetString("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			To:       viper.GetString("SMTP_TO"),
		},
	}

	if config.App.Port == "" {
		config.App.Port = "5000"
	}

	// Refuse to start with an empty signing key rather than issuing
	// tokens HMAC'd with "".
	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}
