package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the phone number search command.
func NewSearchCommand() *cobra.Command {
	var module string

	cmd := &cobra.Command{
		Use:   "search NUMBER",
		Short: "Search records by phone number",
		Long:  "Resolve a phone number to the records that mention it, across all modules or within one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			var scope interface{}
			if module != "" {
				scope = module
			}

			result, err := client.SearchByNumber(context.Background(), args[0], scope)
			if err != nil {
				return fmt.Errorf("failed to search for %s: %w", args[0], err)
			}

			return renderRaw(result)
		},
	}

	cmd.Flags().StringVarP(&module, "module", "m", "", "restrict the search to one module")

	return cmd
}
