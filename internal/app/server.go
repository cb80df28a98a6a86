package app

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio/docs"
	"portfolio/internal/config"
	"portfolio/internal/content"
	handlers "portfolio/internal/http/handler"
	"portfolio/internal/http/middleware"
	"portfolio/internal/logging"
	"portfolio/internal/model"
	"portfolio/internal/service"
	"portfolio/internal/session"
	"portfolio/internal/storage"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

// Server is the HTTP application with everything it owns.
type Server struct {
	cfg      *config.AppConfig
	app      *fiber.App
	db       *sql.DB
	sessions *session.Registry
}

// Options are the dependencies NewServer does not open itself.
type Options struct {
	Store *content.Store
	DB    *sql.DB
	Media storage.Storage
}

// NewServer wires services, middleware, metrics and routes.
func NewServer(cfg *config.AppConfig, opt Options) (*Server, error) {
	var resolver service.MediaResolver
	if opt.Media != nil {
		resolver = storage.NewMediaResolver(opt.Media, cfg.MinIO.PresignExpiry)
	}

	sessions := session.NewRegistry(cfg.Session.TTL, cfg.Session.MaxSessions)
	contentSvc := service.NewContentService(opt.Store, resolver)
	sessionSvc := service.NewSessionService(sessions, contentSvc)
	contactSvc := service.NewContactService(ContactAddress(cfg, opt.Store))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}
	if err := registerContentMetrics(reg, opt.Store, sessions); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	deps := handlers.Deps{
		Content:  contentSvc,
		Sessions: sessionSvc,
		Contact:  contactSvc,
		Media:    opt.Media,
	}
	// Leave DB as a nil interface for the file source.
	if opt.DB != nil {
		deps.DB = opt.DB
	}
	handlers.RegisterRoutes(app, deps)

	return &Server{cfg: cfg, app: app, db: opt.DB, sessions: sessions}, nil
}

// Fiber exposes the underlying app, mainly for tests.
func (s *Server) Fiber() *fiber.App { return s.app }

// Run serves until ctx is canceled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx, sweepInterval)

	addr := ":" + s.cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logging.Info("http", "server_started", map[string]any{"addr": addr, "content_source": s.cfg.Content.Source})
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("http", "server_stopping", nil)
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func registerContentMetrics(reg prometheus.Registerer, store *content.Store, sessions *session.Registry) error {
	items := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "portfolio_content_items",
		Help: "Number of loaded content items per category.",
	}, []string{"category"})
	for _, c := range model.Categories() {
		visible, err := store.Visible(c, model.FilterRecent, "")
		if err != nil {
			return err
		}
		items.WithLabelValues(string(c)).Set(float64(len(visible)))
	}

	active := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "portfolio_sessions_active",
		Help: "Number of live view-state sessions.",
	}, func() float64 { return float64(sessions.Len()) })

	for _, c := range []prometheus.Collector{items, active} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
