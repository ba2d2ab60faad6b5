// Command bookingd serves the travel booking form.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/bookingform/handler"
	"github.com/dmitrymomot/bookingform/modules/booking"
	"github.com/dmitrymomot/bookingform/modules/booking/views"
	core "github.com/dmitrymomot/bookingform/pkg/booking"
	"github.com/dmitrymomot/bookingform/pkg/clientip"
	"github.com/dmitrymomot/bookingform/pkg/config"
	"github.com/dmitrymomot/bookingform/pkg/cookie"
	"github.com/dmitrymomot/bookingform/pkg/email"
	"github.com/dmitrymomot/bookingform/pkg/environment"
	"github.com/dmitrymomot/bookingform/pkg/httpserver"
	"github.com/dmitrymomot/bookingform/pkg/logger"
	"github.com/dmitrymomot/bookingform/pkg/ratelimiter"
	"github.com/dmitrymomot/bookingform/pkg/redis"
	"github.com/dmitrymomot/bookingform/pkg/requestid"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"bookingd"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("bookingd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		app      appConfig
		logCfg   logger.Config
		bookCfg  core.Config
		mailCfg  email.Config
		cookCfg  cookie.Config
		httpCfg  httpserver.Config
		limitCfg ratelimiter.Config
		redisCfg redis.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&app) },
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&bookCfg) },
		func() error { return config.Load(&mailCfg) },
		func() error { return config.Load(&cookCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&redisCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	env := environment.Parse(app.Env)
	log := logger.New(
		logger.WithEnvironment(env, app.Name),
		logger.WithConfig(logCfg),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			booking.VisitorLoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	loc, err := bookCfg.Location()
	if err != nil {
		return err
	}
	sender, err := email.New(mailCfg)
	if err != nil {
		return err
	}
	forms := core.NewRegistry(bookCfg.MaxForms,
		core.NewMailDispatcher(sender, mailCfg.Credentials),
		log,
		core.WithClock(core.SystemClock(loc)),
	)

	cookies, err := cookie.NewFromConfig(cookCfg)
	if err != nil {
		return err
	}

	var checks []httpserver.Check
	var store ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		store = ratelimiter.NewRedisStore(client)
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
		log.Info("REDIS_URL not set, rate limits are kept in memory")
	}
	limiter, err := ratelimiter.NewBucket(store, limitCfg)
	if err != nil {
		return err
	}

	v := views.New()
	svc := booking.NewService(forms, cookies, v,
		handler.NewErrorHandler(log, v.ErrorHandlerConfig()),
		booking.WithLimiter(limiter),
		booking.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
	)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, 3*time.Second, checks...))
	r.Mount("/", svc.Handle())

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
