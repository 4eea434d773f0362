package main

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-lookup/flight-lookup-service/docs"

	flighthttp "github.com/flight-lookup/flight-lookup-service/internal/adapter/http"
	"github.com/flight-lookup/flight-lookup-service/internal/adapter/http/middleware"
	"github.com/flight-lookup/flight-lookup-service/internal/adapter/provider/aviationstack"
	"github.com/flight-lookup/flight-lookup-service/internal/config"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/metrics"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/retry"
	"github.com/flight-lookup/flight-lookup-service/internal/usecase"
)

// newServer builds the Echo instance with middleware, routes and metrics.
func newServer(cfg *config.Config, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.NewMetrics(cfg.Metrics.Namespace, reg)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	client := aviationstack.NewClient(
		clientConfig(cfg.Upstream),
		aviationstack.WithLogger(log),
		aviationstack.WithMetrics(m),
	)

	lookup := usecase.NewFlightLookupUseCase(client, &usecase.Config{
		Logger:  log,
		Metrics: m,
	})

	flighthttp.RegisterRoutesWithMiddleware(e, flighthttp.NewFlightHandler(lookup),
		middleware.CORS(cfg.Server.CORSAllowOrigins),
	)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// clientConfig maps upstream settings to the client configuration.
// A single attempt disables retries.
func clientConfig(u config.UpstreamConfig) aviationstack.Config {
	retryCfg := retry.NoRetry
	if u.RetryAttempts > 1 {
		retryCfg = retry.UpstreamConfig.
			WithMaxAttempts(u.RetryAttempts).
			WithInitialDelay(u.RetryInitialDelay)
	}

	return aviationstack.Config{
		AccessKey:   u.APIKey,
		BaseURL:     u.BaseURL,
		Timeout:     u.Timeout,
		CacheMaxAge: u.CacheMaxAge,
		Retry:       retryCfg,
	}
}
