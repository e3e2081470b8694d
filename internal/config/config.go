package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port        string
	DataBackend string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	SeedURL      string
	SeedTimeout  time.Duration
	SeedSchedule string

	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
	LogLevel           logrus.Level
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:        "3000",
		DataBackend: BackendMongo,

		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "transactions",
		MongoCollection: "transactions",

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		SeedURL:     "https://s3.amazonaws.com/roxiler.com/product_transaction.json",
		SeedTimeout: 30 * time.Second,

		RequestTimeout:     10 * time.Second,
		CORSAllowedOrigins: []string{"*"},
		LogLevel:           logrus.InfoLevel,
	}

	var errs []error

	setString(&env.Port, "PORT")
	setString(&env.DataBackend, "DATA_BACKEND")

	setString(&env.MongoURI, "MONGO_URI")
	setString(&env.MongoDatabase, "MONGO_DATABASE")
	setString(&env.MongoCollection, "MONGO_COLLECTION")

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	setString(&env.SeedURL, "SEED_URL")
	setString(&env.SeedSchedule, "SEED_SCHEDULE")
	errs = append(errs, setDuration(&env.SeedTimeout, "SEED_TIMEOUT"))
	errs = append(errs, setDuration(&env.RequestTimeout, "REQUEST_TIMEOUT"))

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); len(origins) != 0 {
		env.CORSAllowedOrigins = splitList(origins)
	}

	if level := os.Getenv("LOG_LEVEL"); len(level) != 0 {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			env.LogLevel = parsed
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}

	switch c.DataBackend {
	case BackendMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" || c.MongoCollection == "" {
			errs = append(errs, errors.New("MONGO_URI, MONGO_DATABASE and MONGO_COLLECTION are required for the mongo backend"))
		}
	case BackendPostgres, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("DATA_BACKEND %q must be one of %s, %s, %s", c.DataBackend, BackendMongo, BackendPostgres, BackendMemory))
	}

	if u, err := url.Parse(c.SeedURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("SEED_URL %q must be an absolute http(s) URL", c.SeedURL))
	}
	if c.SeedTimeout <= 0 {
		errs = append(errs, errors.New("SEED_TIMEOUT must be positive"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}
	if c.SeedSchedule != "" {
		if _, err := cron.ParseStandard(c.SeedSchedule); err != nil {
			errs = append(errs, fmt.Errorf("SEED_SCHEDULE: %w", err))
		}
	}

	return errors.Join(errs...)
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func setString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func setDuration(target *time.Duration, key string) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = d
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
