package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sunthewhat/quick-cert-api/common/util"
	"github.com/sunthewhat/quick-cert-api/type/shared"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort            = ":5001"
	DefaultMongo           = "mongodb://localhost:27017"
	DefaultMongoDatabase   = "CertificatesDB"
	DefaultMongoCollection = "certificates"
	DefaultChatBaseURL     = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultChatModel       = "models/gemini-2.5-pro"
	DefaultChatTemperature = 0.7
	DefaultSweepSchedule   = "@every 1h"
)

// LoadConfig reads .env, config.yml and the environment.
func LoadConfig() (*shared.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	return Load("config.yml")
}

// Load builds a config from defaults, the optional yaml file at path and the
// process environment, in that order of precedence.
func Load(path string) (*shared.Config, error) {
	config := Defaults()

	yml, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", path, unmarshalErr)
		}
	case errors.Is(readErr, fs.ErrNotExist):
		slog.Info("No config file, using defaults and environment", "path", path)
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, readErr)
	}

	if envErr := applyEnv(config); envErr != nil {
		return nil, envErr
	}

	if validateErr := util.ValidateStruct(config); validateErr != nil {
		errs := util.GetValidationErrors(validateErr)
		if len(errs) > 0 {
			return nil, fmt.Errorf("invalid config: %s", errs[0])
		}
		return nil, fmt.Errorf("invalid config: %w", validateErr)
	}

	if config.UploadRetention != nil && *config.UploadRetention != "" {
		retention, err := time.ParseDuration(*config.UploadRetention)
		if err != nil {
			return nil, fmt.Errorf("invalid config: upload_retention: %w", err)
		}
		if retention <= 0 {
			return nil, fmt.Errorf("invalid config: upload_retention must be positive")
		}
		config.UploadMaxAge = retention
	}

	return config, nil
}

func Defaults() *shared.Config {
	return &shared.Config{
		Environment:     ptr(false),
		Port:            ptr(DefaultPort),
		Cors:            []*string{ptr("*")},
		Store:           ptr("mongo"),
		Mongo:           ptr(DefaultMongo),
		MongoDatabase:   ptr(DefaultMongoDatabase),
		MongoCollection: ptr(DefaultMongoCollection),
		UploadDir:       ptr("uploads"),
		TemplateDir:     ptr("certificate_templates"),
		ChatBaseURL:     ptr(DefaultChatBaseURL),
		ChatModel:       ptr(DefaultChatModel),
		ChatTemperature: ptr(DefaultChatTemperature),
		SigningEnabled:  ptr(false),
		MinIoSecure:     ptr(true),
		MailPort:        ptr(587),
		SweepSchedule:   ptr(DefaultSweepSchedule),
	}
}

func applyEnv(config *shared.Config) error {
	strs := map[string]**string{
		"MONGO_URI":        &config.Mongo,
		"DB_NAME":          &config.MongoDatabase,
		"OPENAI_API_KEY":   &config.ChatAPIKey,
		"CHAT_BASE_URL":    &config.ChatBaseURL,
		"CHAT_MODEL":       &config.ChatModel,
		"STORE":            &config.Store,
		"POSTGRES_DSN":     &config.Postgres,
		"UPLOAD_DIR":       &config.UploadDir,
		"TEMPLATE_DIR":     &config.TemplateDir,
		"VERIFY_URL":       &config.VerifyURL,
		"UPLOAD_RETENTION": &config.UploadRetention,
	}
	for key, field := range strs {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*field = ptr(value)
		}
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		config.Port = &port
	}

	if raw, ok := os.LookupEnv("CHAT_TEMPERATURE"); ok && raw != "" {
		temperature, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid CHAT_TEMPERATURE %q: %w", raw, err)
		}
		config.ChatTemperature = &temperature
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
