package web

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"calpages/internal/infrastructure/session"
	"calpages/internal/ports/input"
	"calpages/internal/ports/output"
)

const (
	loginPath      = "/auth/login"
	onboardingPath = "/getting-started"
	apiPrefix      = "/api/"

	defaultShutdownTimeout = 5 * time.Second
)

// Translator is what the pages need from the i18n layer.
type Translator interface {
	output.Translator
	output.LocaleResolver
}

type Options struct {
	EventTypes      input.EventTypesUseCase
	Sessions        *session.Manager
	Translator      Translator
	PublicURL       string
	UpgradeURL      string
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// Server is the HTTP adapter serving the event types pages.
type Server struct {
	eventTypes      input.EventTypesUseCase
	sessions        *session.Manager
	tr              Translator
	publicURL       string
	upgradeURL      string
	shutdownTimeout time.Duration
	log             *slog.Logger
	app             *fiber.App
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	s := &Server{
		eventTypes:      opts.EventTypes,
		sessions:        opts.Sessions,
		tr:              opts.Translator,
		publicURL:       opts.PublicURL,
		upgradeURL:      opts.UpgradeURL,
		shutdownTimeout: timeout,
		log:             logger,
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "calpages",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
		ReadTimeout:           10 * time.Second,
	})
	s.app.Use(s.requestLogger)
	s.app.Use(recover.New())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.handleHealth)

	s.app.Get("/event-types", s.requireSession(redirectPage), s.handleEventTypesPage)
	s.app.Get("/api/event-types", s.requireSession(jsonRedirect), s.handleEventTypesAPI)
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		return errors.New("listen address required")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go s.shutdownOnContext(ctx)
	s.log.Info("🌐 HTTP server listening", "addr", ln.Addr().String())
	return s.app.Listener(ln)
}

func (s *Server) shutdownOnContext(ctx context.Context) {
	<-ctx.Done()
	if err := s.app.ShutdownWithTimeout(s.shutdownTimeout); err != nil {
		s.log.Error("http shutdown", "err", err)
	}
}

// handleError is the last stop of any error a handler returns.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"err", err,
		)
	}
	if strings.HasPrefix(c.Path(), apiPrefix) {
		return c.Status(code).JSON(fiber.Map{"error": http.StatusText(code)})
	}
	msg := http.StatusText(code)
	if code >= fiber.StatusInternalServerError {
		msg = s.tr.T(s.locale(c), "error.generic", nil)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
