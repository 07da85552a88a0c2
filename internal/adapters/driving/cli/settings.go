package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// secretKeys are prompted for without echo and masked when shown.
var secretKeys = map[string]bool{
	"backend.client_secret": true,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the assistant, backend and escalation settings.

Settings are stored in ~/.techassist/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by key. Secret values are prompted for when
no value is given. Run "techassist settings keys" for the key list.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Technician]")
	cmd.Printf("  Name: %s\n", settings.Technician.Name)
	cmd.Printf("  Email: %s\n", settings.Technician.Email)
	cmd.Println()

	cmd.Println("[Assistant]")
	cmd.Printf("  Reply delay: %s\n", settings.Assistant.ReplyDelay)
	cmd.Println()

	cmd.Println("[Backend]")
	if settings.Backend.IsConfigured() {
		cmd.Printf("  URL: %s\n", settings.Backend.URL)
	} else {
		cmd.Println("  URL: (not set, work orders stay local)")
	}
	if settings.Backend.UsesOAuth() {
		cmd.Printf("  Token URL: %s\n", settings.Backend.TokenURL)
		cmd.Printf("  Client ID: %s\n", settings.Backend.ClientID)
		if settings.Backend.ClientSecret != "" {
			cmd.Printf("  Client secret: %s\n", maskSecret(settings.Backend.ClientSecret))
		} else {
			cmd.Println("  Client secret: (not set)")
		}
	}
	cmd.Printf("  Rate limit: %.1f req/s (burst %d)\n", settings.Backend.RequestsPerSecond, settings.Backend.Burst)
	cmd.Println()

	cmd.Println("[Sync]")
	cmd.Printf("  Retry interval: %s\n", settings.Sync.RetryInterval)
	cmd.Println()

	cmd.Println("[Escalation]")
	if settings.SupervisorContact != "" {
		cmd.Printf("  Supervisor: %s\n", settings.SupervisorContact)
	} else {
		cmd.Println("  Supervisor: (not set)")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case secretKeys[key]:
		cmd.Printf("Enter %s: ", key)
		value = readPassword()
		cmd.Println()
	default:
		return fmt.Errorf("a value is required for %s", key)
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if secretKeys[key] {
		cmd.Printf("%s updated.\n", key)
	} else {
		cmd.Printf("%s = %s\n", key, value)
	}
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
