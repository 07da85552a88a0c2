// Command techassist is the field technician work order assistant.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anirvinkotaru/techassist/internal/adapters/driven/backend/rest"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/clock"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/config/file"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/metrics"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/playbooks"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/storage/sqlite"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/cli"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/services"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// homeEnv overrides the directory holding config.toml and the database.
const homeEnv = "TECHASSIST_HOME"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	home := os.Getenv(homeEnv)

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := sqlite.NewStore(home)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	catalog, err := services.NewCatalog(playbooks.NewEmbeddedSource())
	if err != nil {
		return fmt.Errorf("loading playbooks: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	local := store.WorkOrderStore()
	outbox := store.SyncOutbox()

	// remote stays a nil interface when no backend is configured.
	var remote driven.WorkOrderStore
	if settings.Backend.IsConfigured() {
		client, err := rest.NewClient(settings.Backend)
		if err != nil {
			return fmt.Errorf("creating backend client: %w", err)
		}
		remote = client
	} else {
		logger.Debug("No backend configured, work order changes stay local")
	}

	assistant := services.NewAssistantService(local, catalog, clock.NewTimerScheduler(), settings.Assistant.ReplyDelay)
	assistant.SetMetrics(recorder)

	workOrders := services.NewWorkOrderService(local, remote, outbox, catalog)
	workOrders.SetSupervisorContact(settings.SupervisorContact)
	workOrders.SetMetrics(recorder)

	retrier := services.NewSyncRetrier(local, remote, outbox, settings.Sync.RetryInterval)
	retrier.SetMetrics(recorder)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Assistant:      assistant,
		Catalog:        catalog,
		WorkOrders:     workOrders,
		Sync:           retrier,
		Settings:       settingsService,
		Scheduler:      retrier,
		ToolMetrics:    recorder,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	return cli.Execute()
}
