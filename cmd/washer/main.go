// cmd/washer/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/washer-controller/internal/api"
	"github.com/tamzrod/washer-controller/internal/config"
	"github.com/tamzrod/washer-controller/internal/input"
	imodbus "github.com/tamzrod/washer-controller/internal/input/modbus"
	"github.com/tamzrod/washer-controller/internal/logging"
	"github.com/tamzrod/washer-controller/internal/metrics"
	"github.com/tamzrod/washer-controller/internal/runner"
	"github.com/tamzrod/washer-controller/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("usage: washer <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	logger, err := logging.New(cfg.Controller.LogLevel)
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}
	log := logging.Component(logger, "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metric := metrics.New(reg)

	// --------------------
	// Panel inputs
	// --------------------

	sampler := &input.Sampler{}
	timeout := time.Duration(cfg.IO.TimeoutMs) * time.Millisecond

	dial := func() (input.Client, error) {
		c, err := imodbus.New(imodbus.Config{
			Endpoint: cfg.IO.Endpoint,
			UnitID:   cfg.IO.UnitID,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	edge := input.EdgeFalling
	if cfg.Controller.ButtonEdge == config.EdgeRising {
		edge = input.EdgeRising
	}

	poller, err := input.New(input.Config{
		Interval: time.Duration(cfg.IO.PollIntervalMs) * time.Millisecond,
		Address:  cfg.IO.Inputs.Address,
		Edge:     edge,
	}, nil, dial, sampler)
	if err != nil {
		log.Fatalf("input poller: %v", err)
	}

	// --------------------
	// Panel outputs + status block
	// --------------------

	plan := writer.BuildPlan(cfg)

	clients, closeWriters, err := writer.BuildEndpointClients(cfg)
	if err != nil {
		log.Fatalf("writer clients: %v", err)
	}
	defer closeWriters()

	latch, err := writer.NewLatch(plan.Output, clients)
	if err != nil {
		log.Fatalf("output latch: %v", err)
	}

	var statusWriter writer.StatusWriter
	statusInterval := time.Duration(config.DefaultStatusInterval) * time.Millisecond
	if sw, ok := writer.NewStatusWriter(plan, clients); ok {
		statusWriter = sw
		statusInterval = time.Duration(cfg.Status.IntervalMs) * time.Millisecond
	}

	// --------------------
	// Controller
	// --------------------

	r, err := runner.New(runner.Config{
		Tick:           time.Duration(cfg.Controller.TickMs) * time.Millisecond,
		FlushInterval:  time.Duration(cfg.IO.FlushIntervalMs) * time.Millisecond,
		StatusInterval: statusInterval,
	}, sampler, latch, metric, logging.Component(logger, "controller"))
	if err != nil {
		log.Fatalf("runner: %v", err)
	}

	if cfg.HTTP.Listen != "" {
		srv := &http.Server{
			Addr:    cfg.HTTP.Listen,
			Handler: api.NewRouter(r.Controller(), reg, logging.Component(logger, "api")),
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Errorf("http server: %v", err)
			}
		}()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	polls := make(chan input.Result)
	go poller.Run(ctx, polls)
	go r.FlushLoop(ctx, latch)
	go r.StatusLoop(ctx, statusWriter)

	log.WithFields(logrus.Fields{
		"event":    runner.EventSVCStarted,
		"endpoint": cfg.IO.Endpoint,
		"tick_ms":  cfg.Controller.TickMs,
	}).Info("washer controller started")

	r.Run(ctx, polls)

	log.WithFields(logrus.Fields{"event": runner.EventSVCShutdown}).Info("shutting down")
}
