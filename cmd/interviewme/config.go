package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/interviewme/internal/api"
	"github.com/nikmy/interviewme/internal/notify"
	"github.com/nikmy/interviewme/internal/repo"
	"github.com/nikmy/interviewme/internal/scheduling"
	"github.com/nikmy/interviewme/pkg/environment"
	"github.com/nikmy/interviewme/pkg/errors"
)

type Config struct {
	Environment environment.Env   `yaml:"Environment"`
	API         api.Config        `yaml:"API"`
	Storage     repo.Config       `yaml:"Storage"`
	Notify      notify.Config     `yaml:"Notify"`
	Scheduling  scheduling.Config `yaml:"Scheduling"`
}

// Secrets are taken from the environment when set, overriding the file.
const (
	envMongoURL      = "MONGO_URL"
	envMongoPassword = "MONGO_PASSWORD"
	envSMTPPassword  = "SMTP_PASSWORD"
	envTelegramToken = "TELEGRAM_TOKEN"
	envKafkaBrokers  = "KAFKA_BROKERS"
)

func loadConfig(file string, env string) (*Config, error) {
	path, err := filepath.Abs(file)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", file)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if env != "" {
		cfg.Environment = environment.FromString(env)
	}

	overlayEnv(&cfg, os.LookupEnv)

	err = validator.New().Struct(&cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "validate config")
	}

	return &cfg, nil
}

func overlayEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(envMongoURL); ok {
		cfg.Storage.Mongo.URL = v
	}
	if v, ok := lookup(envMongoPassword); ok {
		cfg.Storage.Mongo.Auth.Password = v
	}
	if v, ok := lookup(envSMTPPassword); ok {
		cfg.Notify.SMTP.Password = v
	}
	if v, ok := lookup(envTelegramToken); ok {
		cfg.Notify.Telegram.Token = v
	}
	if v, ok := lookup(envKafkaBrokers); ok {
		cfg.Notify.Kafka.Brokers = strings.Split(v, ",")
	}
}
