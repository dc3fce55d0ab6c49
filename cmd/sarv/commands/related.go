package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// NewRelatedCommand creates the related records command group.
func NewRelatedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related",
		Short: "Work with record relationships",
		Long:  "List records related through a relate field and link records together",
	}

	cmd.AddCommand(newRelatedListCommand())
	cmd.AddCommand(newRelatedSaveCommand())

	return cmd
}

func newRelatedListCommand() *cobra.Command {
	var (
		query   string
		orderBy string
		limit   int
		offset  int
	)

	cmd := &cobra.Command{
		Use:   "list MODULE RELATED_FIELD",
		Short: "List related records",
		Long:  "List the records related to a module through the given relate field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			module, err := client.Module(args[0])
			if err != nil {
				return err
			}

			opts := &sarvcrm.ListOptions{
				Query:   query,
				OrderBy: orderBy,
				Limit:   limit,
				Offset:  offset,
			}

			records, err := module.GetRelationships(context.Background(), args[1], opts)
			if err != nil {
				return fmt.Errorf("failed to list related records: %w", err)
			}

			return renderRecords(records)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "SQL-like filter expression")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort expression")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum records to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "records to skip")

	return cmd
}

func newRelatedSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save MODULE ID FIELD_NAME RELATED_ID...",
		Short: "Link records together",
		Long:  "Link one record to others through a relationship field",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			module, err := client.Module(args[0])
			if err != nil {
				return err
			}

			rows, err := module.SaveRelationships(context.Background(), args[1], args[2], args[3:])
			if err != nil {
				return fmt.Errorf("failed to save relationships: %w", err)
			}

			fmt.Printf("Successfully linked %d record(s) to %s '%s'\n", len(args[3:]), args[0], args[1])

			if len(rows) > 0 {
				return renderRecords(rows)
			}

			return nil
		},
	}
}
