package web

import (
	"github.com/gofiber/fiber/v2"

	"calpages/internal/adapters/view"
	"calpages/internal/domain/entities"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleEventTypesPage(c *fiber.Ctx) error {
	page, ok, err := s.loadPage(c, redirectPage)
	if !ok {
		return err
	}
	locale := s.locale(c)
	body, err := renderPage(view.Build(page, s.tr, view.Options{
		Locale:     locale,
		PublicURL:  s.publicURL,
		UpgradeURL: s.upgradeURL,
		EventPage:  c.Query("eventPage"),
	}))
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(body)
}

func (s *Server) handleEventTypesAPI(c *fiber.Ctx) error {
	page, ok, err := s.loadPage(c, jsonRedirect)
	if !ok {
		return err
	}
	return c.JSON(newPageProps(page, s.locale(c)))
}

// loadPage runs the use case. When ok is false the response is already
// decided: either a redirect was sent (err is its send error) or err is a
// fault for the error handler.
func (s *Server) loadPage(c *fiber.Ctx, redirect redirectFunc) (*entities.EventTypesPage, bool, error) {
	page, err := s.eventTypes.ListEventTypes(c.UserContext(), userIDFrom(c))
	if err != nil {
		if dest, isRedirect := redirectFor(err); isRedirect {
			return nil, false, redirect(c, dest)
		}
		return nil, false, err
	}
	return page, true, nil
}

// locale honours ?lang= before the Accept-Language header.
func (s *Server) locale(c *fiber.Ctx) string {
	if lang := c.Query("lang"); lang != "" {
		return s.tr.ResolveLocale(lang)
	}
	return s.tr.ResolveLocale(c.Get(fiber.HeaderAcceptLanguage))
}
