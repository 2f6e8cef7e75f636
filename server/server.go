package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/shunsk-dev/voice-order-memo/config"
)

// Deps are the collaborators the server orchestrates. Notifier may be nil,
// in which case every record stays 未通知.
type Deps struct {
	Transcriber Transcriber
	Extractor   Extractor
	Summarizer  Summarizer
	Notifier    Notifier
	Records     RecordStore
	Logger      zerolog.Logger
}

// Server owns the HTTP surface: the upload endpoint that runs the
// stage → transcribe → extract → summarize → resolve → notify → append
// pipeline, and the query endpoint over the record table.
type Server struct {
	app         *fiber.App
	cfg         *config.Config
	transcriber Transcriber
	extractor   Extractor
	summarizer  Summarizer
	notifier    Notifier
	records     RecordStore
	log         zerolog.Logger
}

// New wires the routes and middleware and returns a ready-to-listen server.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.Transcriber == nil {
		return nil, fmt.Errorf("transcriber is required")
	}
	if deps.Extractor == nil {
		return nil, fmt.Errorf("extractor is required")
	}
	if deps.Summarizer == nil {
		return nil, fmt.Errorf("summarizer is required")
	}
	if deps.Records == nil {
		return nil, fmt.Errorf("record store is required")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))

	s := &Server{
		app:         app,
		cfg:         cfg,
		transcriber: deps.Transcriber,
		extractor:   deps.Extractor,
		summarizer:  deps.Summarizer,
		notifier:    deps.Notifier,
		records:     deps.Records,
		log:         deps.Logger,
	}

	app.Get("/health", s.handleHealth)
	api := app.Group("/api")
	api.Post("/upload", s.handleUpload)
	api.Get("/data", s.handleData)

	return s, nil
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.ListenAddr)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
