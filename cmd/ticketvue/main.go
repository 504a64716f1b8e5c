package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketvue/internal/clients"
	"ticketvue/internal/config"
	"ticketvue/internal/logging"
	"ticketvue/internal/server"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	addr := pflag.String("addr", "", "listen address (host:port), overrides HOST and PORT")
	apiURL := pflag.String("api-url", "", "backend base URL, overrides API_URL")
	envFile := pflag.String("env-file", "", "load this env file instead of .env.local and .env")
	demo := pflag.Bool("demo", false, "serve a built-in sample catalog instead of calling the backend")
	pflag.Parse()

	// Load configuration
	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if *addr != "" {
		host, port, err := net.SplitHostPort(*addr)
		if err != nil {
			logrus.WithError(err).WithField("addr", *addr).Fatal("Invalid listen address")
		}
		cfg.Server.Host, cfg.Server.Port = host, port
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}
	if *demo {
		cfg.API.Demo = true
	}

	logging.Init(cfg.Log.Level, cfg.Server.IsDevelopment())

	var backend clients.Backend
	if cfg.API.Demo {
		logrus.Warn("Demo mode: serving the built-in sample catalog")
		backend = clients.NewDemoBackend(time.Now())
	} else {
		backend = clients.NewBackendClient(cfg.API.BaseURL, cfg.API.Timeout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"addr":    cfg.Server.Addr(),
		"api_url": cfg.API.BaseURL,
		"env":     cfg.Server.Env,
	}).Info("TicketVue starting")

	if err := server.New(cfg, backend).Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
