// Package notify renders message templates and delivers them over the
// configured channel.
package notify

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
)

const (
	TemplateNewInterviewInterviewer = "new_interview_interviewer"
	TemplateNewInterviewInterviewee = "new_interview_interviewee"
	TemplateFeedbackToInterviewee   = "feedback_to_interviewee"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type Recipient struct {
	ID        string
	Email     string
	FirstName string
	Telegram  int64
}

func RecipientOf(p models.Person) Recipient {
	return Recipient{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		Telegram:  p.Telegram,
	}
}

type Message struct {
	To       Recipient `json:"to"`
	Subject  string    `json:"subject"`
	Template string    `json:"template"`
	Body     string    `json:"body"`
}

type Notifier interface {
	Send(ctx context.Context, to Recipient, subject, templateKey string, subs map[string]string) error
}

type sender interface {
	deliver(ctx context.Context, msg Message) error
	close() error
}

func newService(log logger.Logger, s sender) (*Service, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return &Service{
		log:       log,
		sender:    s,
		templates: templates,
	}, nil
}

type Service struct {
	log       logger.Logger
	sender    sender
	templates map[string]string
}

func (s *Service) Send(
	ctx context.Context,
	to Recipient,
	subject string,
	templateKey string,
	subs map[string]string,
) error {
	body, err := s.Render(templateKey, subs)
	if err != nil {
		return err
	}

	err = s.sender.deliver(ctx, Message{
		To:       to,
		Subject:  subject,
		Template: templateKey,
		Body:     body,
	})
	if err != nil {
		return errors.WrapFailf(err, "deliver %s to %s", templateKey, to.ID)
	}

	s.log.Debugf("delivered %s to %s", templateKey, to.ID)
	return nil
}

// Render substitutes every {{key}} of the template with subs[key].
// Placeholders without a value are left as is.
func (s *Service) Render(templateKey string, subs map[string]string) (string, error) {
	tmpl, ok := s.templates[templateKey]
	if !ok {
		return "", errors.Error("unknown template %q", templateKey)
	}

	keys := make([]string, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", subs[k])
	}

	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

func (s *Service) Close() error {
	return s.sender.close()
}

func loadTemplates() (map[string]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, errors.WrapFail(err, "list templates")
	}

	templates := make(map[string]string, len(entries))
	for _, e := range entries {
		raw, err := templatesFS.ReadFile("templates/" + e.Name())
		if err != nil {
			return nil, errors.WrapFailf(err, "read template %s", e.Name())
		}
		templates[strings.TrimSuffix(e.Name(), ".txt")] = string(raw)
	}

	return templates, nil
}

// FeedbackLink addresses the feedback form of the interview for the given role.
func FeedbackLink(baseURL string, interviewID string, role models.Role) string {
	return fmt.Sprintf(
		"%s/feedback.html?interview=%s&role=%s",
		strings.TrimRight(baseURL, "/"),
		url.QueryEscape(interviewID),
		role,
	)
}
