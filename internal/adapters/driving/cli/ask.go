package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <task-id> <question>",
	Short: "Ask the assistant one question about a work order",
	Long: `Answers a single question about a work order from its playbook.

Questions are matched on keywords: safety, tools/gear, validate/verification,
escalate/supervisor and next/step/fix. Anything else gets a summary.`,
	Example: `  techassist ask WO-2024-001 "what safety precautions apply?"`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&plainOutput, "plain", false, "print replies without formatting")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	question := strings.Join(args[1:], " ")
	answer, err := assistantService.Ask(cmd.Context(), args[0], question)
	if err != nil {
		return fmt.Errorf("asking about %s: %w", args[0], err)
	}

	cmd.Println(formatReply(cmd.OutOrStdout(), answer.Text))
	return nil
}
