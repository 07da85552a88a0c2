// Package cli provides the cobra command tree for techassist.
package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/anirvinkotaru/techassist/internal/adapters/driven/dispatch"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main. Commands return an error when theirs is nil.
var (
	assistantService driving.AssistantService
	playbookCatalog  driving.PlaybookCatalog
	workOrderService driving.WorkOrderService
	syncService      driving.SyncService
	settingsService  driving.SettingsService
	syncScheduler    driving.Scheduler
	toolMetrics      ToolMetrics
	metricsHandler   http.Handler
)

// ToolMetrics counts MCP tool calls.
type ToolMetrics interface {
	ToolCalled(tool string, success bool)
}

// newFeed opens a dispatch feed for a file path.
var newFeed = func(path string) driven.WorkOrderFeed {
	return dispatch.NewFileFeed(path)
}

// Services holds everything the commands need.
type Services struct {
	Assistant  driving.AssistantService
	Catalog    driving.PlaybookCatalog
	WorkOrders driving.WorkOrderService
	Sync       driving.SyncService
	Settings   driving.SettingsService

	// Scheduler runs background sync retries for long-lived commands.
	Scheduler driving.Scheduler

	// ToolMetrics and MetricsHandler are optional.
	ToolMetrics    ToolMetrics
	MetricsHandler http.Handler
}

// SetServices injects the core services.
func SetServices(s Services) {
	assistantService = s.Assistant
	playbookCatalog = s.Catalog
	workOrderService = s.WorkOrders
	syncService = s.Sync
	settingsService = s.Settings
	syncScheduler = s.Scheduler
	toolMetrics = s.ToolMetrics
	metricsHandler = s.MetricsHandler
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "techassist",
	Short: "Field technician work orders and playbook assistant",
	Long: `techassist manages a field technician's work orders and answers
questions about them from a fixed set of incident playbooks.

Ask about safety, tools, validation, escalation or next steps for any
work order, either one question at a time or in an interactive chat.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
