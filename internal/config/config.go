package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	sessionTTLEnvKey   = "SESSION_TTL"
	logLevelEnvKey     = "LOG_LEVEL"
	kafkaBrokersEnvKey = "KAFKA_BROKERS"
	kafkaTopicEnvKey   = "KAFKA_TOPIC"
	kafkaTimeoutEnvKey = "KAFKA_WRITE_TIMEOUT"
	adminNameEnvKey    = "ADMIN_NAME"
	adminEmailEnvKey   = "ADMIN_EMAIL"
	adminPassEnvKey    = "ADMIN_PASSWORD"
)

type App struct {
	Port              string
	DBConnectionURL   string
	JWTSecret         string
	SessionTTL        time.Duration
	LogLevel          string
	KafkaBrokers      []string
	KafkaTopic        string
	KafkaWriteTimeout time.Duration
	Admin             AdminSeed
}

// AdminSeed describes the administrator created on an empty database.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

func (a AdminSeed) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

// NewApp loads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault(apiPortEnvKey, "8080")
	v.SetDefault(sessionTTLEnvKey, "720h")
	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(kafkaTopicEnvKey, "sample-app-activity")
	v.SetDefault(kafkaTimeoutEnvKey, "5s")
	v.SetDefault(adminNameEnvKey, "Example User")
	v.AutomaticEnv()

	dbConn := v.GetString(dbConnEnvKey)
	if dbConn == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret := v.GetString(jwtSecretEnvKey)
	if jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	sessionTTL := v.GetDuration(sessionTTLEnvKey)
	if sessionTTL <= 0 {
		return App{}, fmt.Errorf("invalid %s: %q", sessionTTLEnvKey, v.GetString(sessionTTLEnvKey))
	}

	return App{
		Port:              v.GetString(apiPortEnvKey),
		DBConnectionURL:   dbConn,
		JWTSecret:         jwtSecret,
		SessionTTL:        sessionTTL,
		LogLevel:          v.GetString(logLevelEnvKey),
		KafkaBrokers:      splitList(v.GetString(kafkaBrokersEnvKey)),
		KafkaTopic:        v.GetString(kafkaTopicEnvKey),
		KafkaWriteTimeout: v.GetDuration(kafkaTimeoutEnvKey),
		Admin: AdminSeed{
			Name:     v.GetString(adminNameEnvKey),
			Email:    v.GetString(adminEmailEnvKey),
			Password: v.GetString(adminPassEnvKey),
		},
	}, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
