package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzaiolo/internal/api"
	"pizzaiolo/internal/config"
	"pizzaiolo/internal/database"
	"pizzaiolo/internal/monitoring"
	"pizzaiolo/internal/processor"
	"pizzaiolo/internal/providers"
	"pizzaiolo/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configFile)
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			log.Fatal("No language model credentials configured; refusing to start")
		}
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Metrics.Port = *metricsPort
	}

	provider, err := initializeProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize provider: %v", err)
	}

	if err := database.InitDB(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	orderStore, err := store.New(database.GetDB())
	if err != nil {
		log.Fatalf("Failed to migrate order store: %v", err)
	}

	metrics := monitoring.NewMetricsCollector()

	chatAPI := api.NewChatAPI(api.Options{
		Processor:    processor.New(provider),
		Store:        orderStore,
		Monitor:      monitoring.NewMonitor(),
		Metrics:      metrics,
		JWTSecret:    cfg.Auth.JWTSecret,
		ProviderName: cfg.Provider.Name,
		Logger:       log,
	})

	if cfg.Metrics.Enabled {
		go startMetricsServer(log, metrics, cfg.Metrics.Port, cfg.Metrics.Path)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: chatAPI.Router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("API server shutdown error: %v", err)
		}
	}()

	log.Infof("Starting API server on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// initializeProvider builds the configured language-model provider.
func initializeProvider(cfg *config.Config) (providers.Provider, error) {
	var (
		provider providers.Provider
		err      error
	)
	switch cfg.Provider.Name {
	case "github_models":
		provider, err = providers.NewGitHubModelsProvider(cfg.Provider.Model)
	default:
		provider, err = providers.NewOpenAIProvider(cfg.OpenAIKey, cfg.Provider.Model)
	}
	if err != nil {
		return nil, err
	}

	provider.SetMaxTokens(cfg.Provider.MaxTokens)
	provider.SetTemperature(cfg.Provider.Temperature)
	return provider, nil
}

func startMetricsServer(log *logrus.Logger, metrics *monitoring.MetricsCollector, port int, path string) {
	metricsRouter := gin.Default()
	metricsRouter.GET(path, gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Infof("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Errorf("Metrics server error: %v", err)
	}
}
