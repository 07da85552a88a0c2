package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

var playbookCmd = &cobra.Command{
	Use:     "playbook",
	Aliases: []string{"playbooks"},
	Short:   "Browse incident playbooks",
}

var playbookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all playbooks",
	RunE:  runPlaybookList,
}

var playbookShowCmd = &cobra.Command{
	Use:   "show <playbook-id>",
	Short: "Show a playbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaybookShow,
}

func init() {
	playbookCmd.AddCommand(playbookListCmd)
	playbookCmd.AddCommand(playbookShowCmd)
	rootCmd.AddCommand(playbookCmd)
}

func runPlaybookList(cmd *cobra.Command, _ []string) error {
	if playbookCatalog == nil {
		return errors.New("playbook catalog not configured")
	}

	docs := playbookCatalog.List()
	cmd.Println("Playbooks:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title:     %s\n", docs[i].Title)
		cmd.Printf("    Estimated: %d minutes\n", docs[i].EstimatedMinutes)
		cmd.Println()
	}
	cmd.Printf("Total: %d playbooks\n", len(docs))
	return nil
}

func runPlaybookShow(cmd *cobra.Command, args []string) error {
	if playbookCatalog == nil {
		return errors.New("playbook catalog not configured")
	}

	doc := playbookCatalog.Lookup(args[0])
	if doc == nil {
		return fmt.Errorf("playbook %q: %w", args[0], domain.ErrNotFound)
	}

	cmd.Printf("%s (%s)\n\n", doc.Title, doc.ID)
	cmd.Printf("%s\n", doc.Summary)
	cmd.Printf("Estimated time: %d minutes\n", doc.EstimatedMinutes)

	printList(cmd, "Symptoms", doc.Symptoms, false)
	printList(cmd, "Immediate actions", doc.ImmediateActions, false)
	printList(cmd, "Resolution steps", doc.ResolutionSteps, true)
	printList(cmd, "Validation steps", doc.ValidationSteps, true)
	printList(cmd, "Safety notes", doc.SafetyNotes, false)
	printList(cmd, "Recommended tools", doc.RecommendedTools, false)

	cmd.Println("\nEscalation:")
	cmd.Printf("  %s\n", doc.EscalationGuidance)
	return nil
}

func printList(cmd *cobra.Command, heading string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	cmd.Printf("\n%s:\n", heading)
	for i, item := range items {
		if numbered {
			cmd.Printf("  %d. %s\n", i+1, item)
		} else {
			cmd.Printf("  - %s\n", item)
		}
	}
}
