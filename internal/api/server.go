package api

import (
	"cmp"
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/interviewme/internal/identity"
	"github.com/nikmy/interviewme/internal/scheduling"
	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
)

const callerKey = "caller"

func NewServer(cfg Config, log logger.Logger, scheduler Scheduler) Server {
	return newServer(cfg, log, scheduler, time.Now)
}

func newServer(cfg Config, log logger.Logger, scheduler Scheduler, now func() time.Time) *server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		Immutable:               true,
		EnableTrustedProxyCheck: len(cfg.Proxy.Trusted) > 0,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet,
			fiber.MethodHead,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).Send(nil)
		}

		serveLog.Error(errors.WrapFailf(err, "handle %s %s", c.Method(), c.Path()))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		scheduler:   scheduler,
		http:        fiber.New(fiberCfg),
		addr:        cfg.HTTP.Addr,
		idHeader:    cmp.Or(cfg.Auth.IDHeader, defaultIDHeader),
		emailHeader: cmp.Or(cfg.Auth.EmailHeader, defaultEmailHeader),
		now:         now,
		log:         serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	scheduler Scheduler
	http      *fiber.App
	addr      string

	idHeader    string
	emailHeader string

	now func() time.Time
	log logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	s.http.Use(s.authWrapper)

	s.http.Post("/scheduled-interviews", s.handleSchedule)
	s.http.Get("/scheduled-interviews", s.handleList)
	s.http.Delete("/scheduled-interviews", s.handleCancel)

	s.http.Post("/interviewee-feedback", s.handleFeedback)

	s.http.Post("/availability", s.handleDeclareAvailability)
	s.http.Put("/persons", s.handleSaveProfile)

	s.http.Get("/shadow-interviews", s.handleShadowCandidates)
	s.http.Post("/shadow-interviews", s.handleAttachShadow)
}

// authWrapper resolves the caller from the headers set by the auth proxy.
func (s *server) authWrapper(c *fiber.Ctx) error {
	caller, err := identity.Resolve(c.Get(s.idHeader), c.Get(s.emailHeader))
	if errors.Is(err, identity.ErrAnonymous) {
		return s.sendError(c, http.StatusUnauthorized, "caller identity is missing")
	}
	if err != nil {
		return errors.WrapFail(err, "resolve caller identity")
	}

	c.Locals(callerKey, caller)
	return c.Next()
}

func (s *server) caller(c *fiber.Ctx) identity.Identity {
	caller, _ := c.Locals(callerKey).(identity.Identity)
	return caller
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

// fail answers with the status the error kind maps to. Errors of unknown
// kind go to the error handler.
func (s *server) fail(c *fiber.Ctx, err error) error {
	status, ok := statusOf(err)
	if !ok {
		return err
	}

	if status >= http.StatusInternalServerError {
		s.log.Error(err)
	} else {
		s.log.Debugf("%s %s: %s", c.Method(), c.Path(), err)
	}

	return s.sendError(c, status, err.Error())
}

func statusOf(err error) (int, bool) {
	switch {
	case errors.Is(err, scheduling.ErrInvalidRequest):
		return http.StatusBadRequest, true
	case errors.Is(err, scheduling.ErrUnauthorized):
		return http.StatusUnauthorized, true
	case errors.Is(err, scheduling.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, scheduling.ErrNoAvailableInterviewer), errors.Is(err, scheduling.ErrConflict):
		return http.StatusConflict, true
	case errors.Is(err, scheduling.ErrNotification):
		return http.StatusInternalServerError, true
	default:
		return 0, false
	}
}

func (s *server) getQueryOrErr(c *fiber.Ctx, name string) (string, error) {
	value := c.Query(name, "")
	if value == "" {
		return "", errors.Error("got empty %q param", name)
	}

	return value, nil
}
