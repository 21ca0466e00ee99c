package web

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"calpages/internal/domain"
	"calpages/internal/infrastructure/session"
)

const localsUserID = "user_id"

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(fiber.HeaderXRequestID, id)

	// Errors are rendered here so the logged status is the one sent.
	if err := c.Next(); err != nil {
		if herr := s.handleError(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.log.InfoContext(c.UserContext(), "request",
		"request_id", id,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return nil
}

// redirectFunc answers a request that cannot proceed.
type redirectFunc func(c *fiber.Ctx, destination string) error

func redirectPage(c *fiber.Ctx, destination string) error {
	return c.Redirect(destination, fiber.StatusTemporaryRedirect)
}

func jsonRedirect(c *fiber.Ctx, destination string) error {
	c.Location(destination)
	return c.Status(fiber.StatusTemporaryRedirect).JSON(fiber.Map{"redirect": destination})
}

// requireSession resolves the session and stores the user id in the locals,
// or sends the client to the login page.
func (s *Server) requireSession(deny redirectFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := s.sessions.FromRequest(c.Cookies(session.CookieName), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				return err
			}
			s.log.DebugContext(c.UserContext(), "no session", "path", c.Path(), "err", err)
			return deny(c, loginPath)
		}
		c.Locals(localsUserID, sess.UserID)
		return c.Next()
	}
}

func userIDFrom(c *fiber.Ctx) uint {
	id, _ := c.Locals(localsUserID).(uint)
	return id
}

// redirectFor maps the page-load outcomes that are not faults to their
// destination.
func redirectFor(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrUserNotFound):
		return loginPath, true
	case errors.Is(err, domain.ErrOnboardingRequired):
		return onboardingPath, true
	default:
		return "", false
	}
}
