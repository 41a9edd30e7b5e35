// Package server exposes the note store over HTTP: a tool-call API
// plus REST convenience routes for direct note access.
package server

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/entrhq/scribe/pkg/config"
	"github.com/entrhq/scribe/pkg/logging"
	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// Version is reported by the health endpoint.
const Version = "2.0.0"

// Server serves the tool-call API over fiber. Tool availability is
// controlled by the config allowlist; everything else is a thin
// dispatch layer over the store and registry.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	store    *notes.Store
	registry *tools.Registry
	filter   *config.ToolFilter
	log      *logging.Logger
}

// New builds the fiber app with middleware and routes.
func New(cfg *config.Config, store *notes.Store, registry *tools.Registry, log *logging.Logger) (*Server, error) {
	filter, err := config.NewToolFilter(cfg.Tools.Enabled)
	if err != nil {
		return nil, err
	}

	s := &Server{
		app:      fiber.New(),
		cfg:      cfg,
		store:    store,
		registry: registry,
		filter:   filter,
		log:      log,
	}

	s.app.Use(requestid.New(), logger.New(), recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.CORSOrigins, ","),
	}))

	s.app.Get("/", s.health)
	s.app.Get("/tools", s.listTools)
	s.app.Post("/tools/call", s.callTool)
	s.app.Route("/notes", func(r fiber.Router) {
		r.Get("/", s.listNotes)
		r.Post("/", s.createNote)
		r.Get("/:noteID", s.getNote)
		r.Put("/:noteID", s.updateNote)
		r.Delete("/:noteID", s.deleteNote)
	})

	return s, nil
}

// Listen serves requests on the configured address until Shutdown.
func (s *Server) Listen() error {
	addr := s.cfg.Server.Addr()
	s.log.Infof("listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
