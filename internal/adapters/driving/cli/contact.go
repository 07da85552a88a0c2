package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Print the supervisor escalation contact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if workOrderService == nil {
			return errWorkOrdersNotConfigured
		}
		contact, err := workOrderService.SupervisorContact()
		if err != nil {
			return errors.New("supervisor contact not configured (set supervisor.contact)")
		}
		cmd.Println(contact)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
}
