package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

var workOrderCmd = &cobra.Command{
	Use:     "workorder",
	Aliases: []string{"wo"},
	Short:   "Manage work orders",
}

var workOrderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE:  runWorkOrderList,
}

var workOrderShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show work order details",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkOrderShow,
}

var workOrderResolveCmd = &cobra.Command{
	Use:   "resolve <task-id>",
	Short: "Mark a work order completed",
	Long: `Marks a work order completed and pushes the change to the backend.
If the backend cannot be reached the change is kept locally and queued
for the next sync.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkOrderResolve,
}

var workOrderPriorityCmd = &cobra.Command{
	Use:   "priority",
	Short: "Show open work orders by priority",
	RunE:  runWorkOrderPriority,
}

var workOrderBriefingCmd = &cobra.Command{
	Use:   "briefing <task-id>",
	Short: "Show the playbook briefing for a work order",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkOrderBriefing,
}

var workOrderImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import dispatched work orders from a YAML file",
	Long: `Imports the work_orders list from a dispatch YAML file into the local store.
With --watch, the file is re-imported whenever it changes until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkOrderImport,
}

var workOrderPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Copy work orders from the backend",
	RunE:  runWorkOrderPull,
}

var workOrderSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push locally queued changes to the backend",
	RunE:  runWorkOrderSync,
}

var (
	listStatus  string
	importWatch bool
)

func init() {
	workOrderListCmd.Flags().StringVar(&listStatus, "status", "", "only list orders with this status")
	workOrderImportCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "keep watching the file for changes")

	workOrderCmd.AddCommand(workOrderListCmd)
	workOrderCmd.AddCommand(workOrderShowCmd)
	workOrderCmd.AddCommand(workOrderResolveCmd)
	workOrderCmd.AddCommand(workOrderPriorityCmd)
	workOrderCmd.AddCommand(workOrderBriefingCmd)
	workOrderCmd.AddCommand(workOrderImportCmd)
	workOrderCmd.AddCommand(workOrderPullCmd)
	workOrderCmd.AddCommand(workOrderSyncCmd)
	rootCmd.AddCommand(workOrderCmd)
}

var errWorkOrdersNotConfigured = errors.New("work order service not configured")

func runWorkOrderList(cmd *cobra.Command, _ []string) error {
	if workOrderService == nil {
		return errWorkOrdersNotConfigured
	}

	orders, err := workOrderService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list work orders: %w", err)
	}

	shown := 0
	for i := range orders {
		if listStatus != "" && string(orders[i].Status) != listStatus {
			continue
		}
		printOrderLine(cmd, orders[i])
		shown++
	}
	if shown == 0 {
		cmd.Println("No work orders found.")
		return nil
	}
	cmd.Printf("\nTotal: %d work orders\n", shown)
	return nil
}

func printOrderLine(cmd *cobra.Command, wo domain.WorkOrder) {
	due := ""
	if wo.HasDueDate() {
		due = "  due " + wo.DueDate.Local().Format(timeLayout)
	}
	cmd.Printf("  %-12s [%-8s] %-11s %s%s\n", wo.TaskID, wo.Priority.DisplayName(), wo.Status, wo.Title, due)
}

func runWorkOrderShow(cmd *cobra.Command, args []string) error {
	if workOrderService == nil {
		return errWorkOrdersNotConfigured
	}

	wo, err := workOrderService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get work order: %w", err)
	}

	cmd.Printf("Work Order: %s\n\n", wo.TaskID)
	cmd.Printf("  Title:     %s\n", wo.Title)
	cmd.Printf("  Priority:  %s\n", wo.Priority.DisplayName())
	cmd.Printf("  Status:    %s\n", wo.Status)
	if wo.HasDueDate() {
		cmd.Printf("  Due:       %s\n", wo.DueDate.Local().Format(timeLayout))
	}
	if wo.Description != "" {
		cmd.Printf("\n  %s\n", wo.Description)
	}

	cmd.Println("\n  Location:")
	printField(cmd, "Site", wo.Location)
	printField(cmd, "Data hall", wo.DataHall)
	printField(cmd, "Rack", wo.RackNumber)
	printField(cmd, "Position", wo.ServerPosition)
	printField(cmd, "Code", wo.LocationCode)

	if wo.UsersAffected > 0 || wo.BusinessImpact != "" || len(wo.SystemsAffected) > 0 {
		cmd.Println("\n  Impact:")
		if wo.UsersAffected > 0 {
			cmd.Printf("    Users affected: %d\n", wo.UsersAffected)
		}
		printField(cmd, "Business", wo.BusinessImpact)
		printField(cmd, "Systems", strings.Join(wo.SystemsAffected, ", "))
	}

	cmd.Println("\n  Planning:")
	printField(cmd, "Estimate", wo.TimeEstimate)
	printField(cmd, "Equipment", wo.Equipment)
	printField(cmd, "Tools", strings.Join(wo.RequiredTools, ", "))
	printField(cmd, "Skills", strings.Join(wo.SkillsNeeded, ", "))
	printField(cmd, "QR code", wo.QRCodeData)

	if wo.IssueDocumentID != "" {
		cmd.Printf("\n  Playbook: %s\n", wo.IssueDocumentID)
	}
	return nil
}

func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	cmd.Printf("    %s: %s\n", label, value)
}

func runWorkOrderResolve(cmd *cobra.Command, args []string) error {
	if workOrderService == nil {
		return errWorkOrdersNotConfigured
	}

	result, err := workOrderService.Resolve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve work order: %w", err)
	}

	if result.Synced {
		cmd.Printf("Work order %s marked completed.\n", result.Order.TaskID)
		return nil
	}

	cmd.Printf("Work order %s marked completed locally.\n", result.Order.TaskID)
	if result.SyncErr != nil {
		cmd.Printf("Backend sync failed: %v\n", result.SyncErr)
	}
	cmd.Println("The change is queued and will be retried.")
	return nil
}

func runWorkOrderPriority(cmd *cobra.Command, _ []string) error {
	if workOrderService == nil {
		return errWorkOrdersNotConfigured
	}

	q, err := workOrderService.PriorityQueue(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to build priority queue: %w", err)
	}

	if q.Len() == 0 {
		cmd.Println("No open work orders.")
		return nil
	}

	buckets := []struct {
		priority domain.Priority
		orders   []domain.WorkOrder
	}{
		{domain.PriorityCritical, q.Critical},
		{domain.PriorityHigh, q.High},
		{domain.PriorityMedium, q.Medium},
		{domain.PriorityLow, q.Low},
	}
	for _, b := range buckets {
		if len(b.orders) == 0 {
			continue
		}
		cmd.Printf("%s (%d)\n", b.priority.DisplayName(), len(b.orders))
		for i := range b.orders {
			printOrderLine(cmd, b.orders[i])
		}
		cmd.Println()
	}
	return nil
}

func runWorkOrderBriefing(cmd *cobra.Command, args []string) error {
	if workOrderService == nil {
		return errWorkOrdersNotConfigured
	}

	b, err := workOrderService.Briefing(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load briefing: %w", err)
	}

	cmd.Printf("%s: %s\n\n", b.WorkOrder.TaskID, b.WorkOrder.Title)
	if b.Document == nil {
		cmd.Println("No playbook is linked to this work order.")
		return nil
	}

	cmd.Printf("Playbook: %s\n", b.Document.Title)
	cmd.Printf("%s\n", b.Document.Summary)
	cmd.Printf("Estimated time: %d minutes\n", b.Document.EstimatedMinutes)
	printList(cmd, "Immediate actions", b.ImmediateActions, false)
	if b.NextStep != "" {
		cmd.Printf("\nNext step:\n  %s\n", b.NextStep)
	}
	return nil
}

func runWorkOrderImport(cmd *cobra.Command, args []string) error {
	if workOrderService == nil {
		return errWorkOrdersNotConfigured
	}

	feed := newFeed(args[0])
	ctx := cmd.Context()

	orders, err := feed.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read dispatch file: %w", err)
	}
	n, err := workOrderService.Import(ctx, orders)
	if err != nil {
		return fmt.Errorf("failed to import work orders: %w", err)
	}
	cmd.Printf("Imported %d work orders from %s\n", n, args[0])

	if !importWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Println("Watching for changes (Ctrl+C to stop)...")
	return feed.Watch(ctx, func(batch []domain.WorkOrder) {
		n, err := workOrderService.Import(ctx, batch)
		if err != nil {
			logger.Warn("re-import failed: %v", err)
			return
		}
		cmd.Printf("Imported %d work orders\n", n)
	})
}

func runWorkOrderPull(cmd *cobra.Command, _ []string) error {
	if workOrderService == nil {
		return errWorkOrdersNotConfigured
	}

	n, err := workOrderService.Pull(cmd.Context())
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return errors.New("no backend configured (set backend.url)")
	}
	if err != nil {
		return fmt.Errorf("failed to pull work orders: %w", err)
	}

	cmd.Printf("Pulled %d work orders from the backend.\n", n)
	return nil
}

func runWorkOrderSync(cmd *cobra.Command, _ []string) error {
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	ctx := cmd.Context()
	pending, err := syncService.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending changes: %w", err)
	}
	if len(pending) == 0 {
		cmd.Println("Nothing to sync.")
		return nil
	}

	cmd.Printf("Syncing %d pending changes...\n", len(pending))
	synced, err := syncService.RetryPending(ctx)
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return errors.New("no backend configured (set backend.url)")
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Synced %d of %d changes.\n", synced, len(pending))
	if remaining := len(pending) - synced; remaining > 0 {
		cmd.Printf("%d changes remain queued.\n", remaining)
	}
	return nil
}
