package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"command-reset/pkg/aws/s3"
)

const (
	EnvConfigPath    = "RESET_CONFIG_PATH"
	EnvAPIBaseURL    = "DISCORD_API_URL"
	EnvBotToken      = "BOT_TOKEN"
	EnvApplicationID = "APPLICATION_ID"

	DefaultConfigPath = "LeagueOfGains.cfg"
	DefaultAPIBaseURL = "https://discord.com"
	APIVersion        = "10"

	PlaceholderBotToken      = "YOUR_DISCORD_BOT_TOKEN_HERE"
	PlaceholderApplicationID = "YOUR_APPLICATION_ID_HERE"

	dotEnvFile = ".env"
	loggerName = "config"
)

type Config struct {
	Logger *zap.Logger

	ConfigPath string
	APIBaseURL string
	APIVersion string

	s3Client s3.ClientIFace
}

type settings struct {
	ConfigPath string `env:"RESET_CONFIG_PATH" envDefault:"LeagueOfGains.cfg"`
	APIBaseURL string `env:"DISCORD_API_URL" envDefault:"https://discord.com"`
}

// Record is the optional on-disk credential file. Env values only fill
// fields the file leaves empty or as a placeholder.
type Record struct {
	BotToken      string `json:"bot_token" env:"BOT_TOKEN"`
	ApplicationID string `json:"application_id" env:"APPLICATION_ID"`
}

func New() *Config {
	return &Config{
		Logger:     NewLogger(),
		ConfigPath: DefaultConfigPath,
		APIBaseURL: DefaultAPIBaseURL,
		APIVersion: APIVersion,
		s3Client:   s3.New(),
	}
}

func NewLogger() *zap.Logger {
	logCfg := zap.NewProductionConfig()
	logCfg.DisableStacktrace = true
	logCfg.Encoding = "console"
	logCfg.EncoderConfig.EncodeTime = zap.NewDevelopmentEncoderConfig().EncodeTime
	logger, _ := logCfg.Build()
	return logger
}

func (c *Config) Load() error {
	logger := c.Logger.Named(loggerName)

	// Optional .env, process env always wins
	if err := godotenv.Load(dotEnvFile); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	var s settings
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("could not parse environment: %w", err)
	}
	c.ConfigPath = s.ConfigPath
	c.APIBaseURL = s.APIBaseURL

	logger.Debug("loaded settings", zap.String("configPath", c.ConfigPath), zap.String("apiBaseURL", c.APIBaseURL))
	return nil
}

// LoadRecord reads the credential file at ConfigPath. When the file cannot be
// read or parsed the error is returned alongside a record built from env only.
func (c *Config) LoadRecord() (Record, error) {
	var record Record

	fileErr := c.readRecord(&record)
	if fileErr != nil {
		record = Record{}
	}

	if err := applyEnv(&record); err != nil {
		return record, multierr.Append(fileErr, err)
	}
	return record, fileErr
}

// Token returns the bot token unless it is empty or still the placeholder.
func (r Record) Token() (string, bool) {
	return configured(r.BotToken, PlaceholderBotToken)
}

// AppID returns the application ID unless it is empty or still the placeholder.
func (r Record) AppID() (string, bool) {
	return configured(r.ApplicationID, PlaceholderApplicationID)
}

func (c *Config) readRecord(record *Record) error {
	fileData, err := c.readRecordFile()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(fileData, record); err != nil {
		return fmt.Errorf("could not parse %s: %w", c.ConfigPath, err)
	}
	return nil
}

func (c *Config) readRecordFile() ([]byte, error) {
	if bucket, key, ok := s3.ParseURI(c.ConfigPath); ok {
		if err := c.s3Client.Connect(); err != nil {
			return nil, err
		}
		return c.s3Client.Get(bucket, key)
	}

	fileData, err := os.ReadFile(c.ConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not find %s in the current directory: %w", c.ConfigPath, err)
	}
	return fileData, err
}

func applyEnv(record *Record) error {
	var envRecord Record
	if err := env.Parse(&envRecord); err != nil {
		return err
	}

	if _, ok := record.Token(); !ok && envRecord.BotToken != "" {
		record.BotToken = envRecord.BotToken
	}
	if _, ok := record.AppID(); !ok && envRecord.ApplicationID != "" {
		record.ApplicationID = envRecord.ApplicationID
	}
	return nil
}

func configured(value string, placeholder string) (string, bool) {
	if value == "" || value == placeholder {
		return "", false
	}
	return value, true
}
