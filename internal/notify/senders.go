package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
	"github.com/nikmy/interviewme/pkg/tools/throttle"
)

type logSender struct {
	log logger.Logger
}

func (s logSender) deliver(_ context.Context, msg Message) error {
	s.log.Infof("to %s <%s>: %s\n%s", msg.To.ID, msg.To.Email, msg.Subject, msg.Body)
	return nil
}

func (logSender) close() error {
	return nil
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

func newSMTPSender(cfg SMTPConfig) (*smtpSender, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, errors.Error("smtp host and sender address are required")
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		from:     cfg.From,
		auth:     auth,
		sendMail: smtp.SendMail,
	}, nil
}

type smtpSender struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

func (s *smtpSender) deliver(_ context.Context, msg Message) error {
	if msg.To.Email == "" {
		return errors.Error("recipient %s has no email", msg.To.ID)
	}

	return s.sendMail(s.addr, s.auth, s.from, []string{msg.To.Email}, s.compose(msg))
}

func (s *smtpSender) compose(msg Message) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))

	return []byte(b.String())
}

func (*smtpSender) close() error {
	return nil
}

type telegramBot interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

func newTelegramSender(cfg TelegramConfig) (*telegramSender, error) {
	if cfg.Token == "" {
		return nil, errors.Error("telegram token is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		URL:     cfg.URL,
		Token:   cfg.Token,
		Offline: true,
		Client:  &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = defaultTelegramInterval
	}

	return &telegramSender{bot: b, throttler: throttle.New(interval)}, nil
}

// Bot API allows about 30 messages per second across all chats.
const defaultTelegramInterval = 35 * time.Millisecond

type telegramSender struct {
	bot       telegramBot
	throttler *throttle.Throttler
}

func (s *telegramSender) deliver(ctx context.Context, msg Message) error {
	if msg.To.Telegram == 0 {
		return errors.Error("recipient %s has no telegram chat", msg.To.ID)
	}

	text := msg.Subject + "\n\n" + msg.Body
	return s.throttler.Do(ctx, func() error {
		_, err := s.bot.Send(telebot.ChatID(msg.To.Telegram), text, &telebot.SendOptions{DisableWebPagePreview: true})
		return err
	})
}

func (*telegramSender) close() error {
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func newKafkaSender(cfg KafkaConfig) (*kafkaSender, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.Error("kafka brokers and topic are required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &kafkaSender{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: timeout,
		},
	}, nil
}

type kafkaSender struct {
	w messageWriter
}

func (s *kafkaSender) deliver(ctx context.Context, msg Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return errors.WrapFail(err, "marshal message to json")
	}

	return s.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.To.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "template", Value: []byte(msg.Template)},
		},
	})
}

func (s *kafkaSender) close() error {
	return errors.WrapFail(s.w.Close(), "close kafka writer")
}
