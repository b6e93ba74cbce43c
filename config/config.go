package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
	"ulascansenturk/weather-agent/internal/agents"
	"ulascansenturk/weather-agent/internal/providers"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GeocodingBaseURL string
	ForecastBaseURL  string
	ForecastTimezone string
	UpstreamTimeout  time.Duration

	AgentModel string

	QueryLogEnabled bool
	DBName          string
	DBPassword      string
	DBUser          string
	DBPort          string
	DBHost          string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-agent")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("GEOCODING_BASE_URL", providers.DefaultGeocodingBaseURL)
	v.SetDefault("FORECAST_BASE_URL", providers.DefaultForecastBaseURL)
	v.SetDefault("FORECAST_TIMEZONE", providers.DefaultTimezone)
	v.SetDefault("UPSTREAM_TIMEOUT", providers.DefaultTimeout)
	v.SetDefault("AGENT_MODEL", agents.DefaultModel)
	v.SetDefault("QUERY_LOG_ENABLED", false)
	v.SetDefault("DATABASE_PORT", "5432")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		GeocodingBaseURL: v.GetString("GEOCODING_BASE_URL"),
		ForecastBaseURL:  v.GetString("FORECAST_BASE_URL"),
		ForecastTimezone: v.GetString("FORECAST_TIMEZONE"),
		UpstreamTimeout:  v.GetDuration("UPSTREAM_TIMEOUT"),
		AgentModel:       v.GetString("AGENT_MODEL"),
		QueryLogEnabled:  v.GetBool("QUERY_LOG_ENABLED"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
