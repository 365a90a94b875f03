package server

import (
	"time"

	"backend-brightway/internal/chat"
	"backend-brightway/internal/community"
	"backend-brightway/internal/config"
	"backend-brightway/internal/learning"
	"backend-brightway/internal/metrics"
	"backend-brightway/internal/podcasts"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Posts    *community.Store
	Podcasts *podcasts.Catalog
	Metrics  *metrics.Metrics
}

func NewServer(cfg config.Config) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	var seed []community.Post
	if cfg.SeedSamplePosts {
		seed = community.SamplePosts(time.Now())
	}

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Posts:    community.NewStore(seed...),
		Podcasts: podcasts.NewCatalog(podcasts.Episodes),
		Metrics:  metrics.New(),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.App.Get("/metrics", s.Metrics.Handler())

	community.RegisterRoutes(s.App.Group("/community"), s.Posts, s.Metrics)
	chat.RegisterRoutes(s.App.Group("/chat"), s.Cfg.ChatReplyDelay, s.Metrics)
	podcasts.RegisterRoutes(s.App.Group("/podcasts"), s.Podcasts)
	learning.RegisterRoutes(s.App.Group("/learning"))
}
