package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat <task-id>",
	Short: "Chat with the assistant about a work order",
	Long: `Opens an assistant session for a work order and reads questions from
standard input, one per line. Type "exit" or "quit" to leave.`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&plainOutput, "plain", false, "print replies without formatting")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	ctx := cmd.Context()
	conv, err := assistantService.Open(ctx, args[0])
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	defer conv.Close()

	for _, msg := range conv.Messages() {
		printMessage(cmd, msg)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	cmd.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit":
			return nil
		}

		if _, err := conv.Submit(line); err != nil {
			if errors.Is(err, domain.ErrEmptyInput) {
				cmd.Print("> ")
				continue
			}
			return err
		}

		cmd.Println("Assistant is thinking...")
		select {
		case reply, ok := <-conv.Replies():
			if !ok {
				return nil
			}
			printMessage(cmd, reply)
		case <-ctx.Done():
			return ctx.Err()
		}
		cmd.Print("> ")
	}
	cmd.Println()
	return scanner.Err()
}

func printMessage(cmd *cobra.Command, msg domain.ConversationMessage) {
	if msg.Role == domain.RoleUser {
		cmd.Printf("You: %s\n", msg.Text)
		return
	}
	cmd.Printf("Assistant: %s\n\n", formatReply(cmd.OutOrStdout(), msg.Text))
}
