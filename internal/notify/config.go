package notify

import (
	"time"

	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
)

type Channel string

const (
	ChannelLog      Channel = "log"
	ChannelSMTP     Channel = "smtp"
	ChannelTelegram Channel = "telegram"
	ChannelKafka    Channel = "kafka"
)

type Config struct {
	Channel Channel `yaml:"channel" validate:"required,oneof=log smtp telegram kafka"`

	SMTP     SMTPConfig     `yaml:"smtp"`
	Telegram TelegramConfig `yaml:"telegram"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	From     string `yaml:"from"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type TelegramConfig struct {
	Token   string        `yaml:"token"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	// Interval between two sends, negative disables throttling.
	Interval time.Duration `yaml:"interval"`
}

type KafkaConfig struct {
	Brokers []string      `yaml:"brokers"`
	Topic   string        `yaml:"topic"`
	Timeout time.Duration `yaml:"timeout"`
}

func New(cfg Config, log logger.Logger) (*Service, error) {
	log = log.With("notify")

	var (
		s   sender
		err error
	)

	switch cfg.Channel {
	case ChannelLog, "":
		s = logSender{log: log}
	case ChannelSMTP:
		s, err = newSMTPSender(cfg.SMTP)
	case ChannelTelegram:
		s, err = newTelegramSender(cfg.Telegram)
	case ChannelKafka:
		s, err = newKafkaSender(cfg.Kafka)
	default:
		err = errors.Error("unknown notification channel %q", cfg.Channel)
	}

	if err != nil {
		return nil, errors.WrapFailf(err, "init %s notifier", cfg.Channel)
	}

	log.Infof("delivering notifications over %s", orLog(cfg.Channel))
	return newService(log, s)
}

func orLog(c Channel) Channel {
	if c == "" {
		return ChannelLog
	}
	return c
}
