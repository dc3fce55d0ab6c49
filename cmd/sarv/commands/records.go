package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// NewRecordsCommand creates the records command group.
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"rec"},
		Short:   "Manage CRM records",
		Long:    "Create, list, inspect, update, and delete records in any module",
	}

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsGetCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsUpdateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

func newRecordsListCommand() *cobra.Command {
	var (
		query    string
		orderBy  string
		selects  []string
		limit    int
		offset   int
		allPages bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list MODULE",
		Short: "List records of a module",
		Long:  "List records of a module, optionally filtered with a query expression",
		Args:  cobra.ExactArgs(1),
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
				Query:        query,
				OrderBy:      orderBy,
				SelectFields: selects,
				Limit:        limit,
				Offset:       offset,
			}

			ctx := context.Background()

			var records []sarvcrm.Record
			if allPages {
				records, err = sarvcrm.NewListPager(module, opts, pageSize).All(ctx)
			} else {
				records, err = module.List(ctx, opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list %s: %w", args[0], err)
			}

			return renderRecords(records)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "SQL-like filter expression")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort expression (e.g. 'date_entered DESC')")
	cmd.Flags().StringSliceVar(&selects, "select", nil, "fields to return (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum records to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "records to skip")
	cmd.Flags().BoolVar(&allPages, "all", false, "walk every page of the listing")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size when walking all pages")

	return cmd
}

func newRecordsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MODULE ID",
		Short: "Get a single record",
		Long:  "Fetch one record by id",
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

			record, err := module.Get(context.Background(), args[1])
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			return renderRecord(record)
		},
	}
}

func newRecordsCreateCommand() *cobra.Command {
	var dataJSON string

	cmd := &cobra.Command{
		Use:   "create MODULE [FIELD=VALUE...]",
		Short: "Create a record",
		Long:  "Create a record from key=value arguments or a JSON document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := collectFields(args[1:], dataJSON)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			module, err := client.Module(args[0])
			if err != nil {
				return err
			}

			recordID, err := module.Create(context.Background(), fields)
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			fmt.Printf("Successfully created record '%s' in %s\n", recordID, args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&dataJSON, "data", "", "record fields as a JSON object (@file to read from a file)")

	return cmd
}

func newRecordsUpdateCommand() *cobra.Command {
	var dataJSON string

	cmd := &cobra.Command{
		Use:   "update MODULE ID [FIELD=VALUE...]",
		Short: "Update a record",
		Long:  "Overwrite fields of an existing record",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := collectFields(args[2:], dataJSON)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			module, err := client.Module(args[0])
			if err != nil {
				return err
			}

			recordID, err := module.Update(context.Background(), args[1], fields)
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			if recordID == "" {
				recordID = args[1]
			}

			fmt.Printf("Successfully updated record '%s' in %s\n", recordID, args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&dataJSON, "data", "", "record fields as a JSON object (@file to read from a file)")

	return cmd
}

func newRecordsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete MODULE ID",
		Short: "Delete a record",
		Long:  "Delete a record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete %s record '%s'? (y/N): ", args[0], args[1])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			module, err := client.Module(args[0])
			if err != nil {
				return err
			}

			recordID, err := module.Delete(context.Background(), args[1])
			if err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}

			if recordID == "" {
				recordID = args[1]
			}

			fmt.Printf("Successfully deleted record '%s' from %s\n", recordID, args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

// collectFields merges --data JSON with key=value arguments; arguments win
// on conflicting keys.
func collectFields(args []string, dataJSON string) (sarvcrm.Fields, error) {
	fields := sarvcrm.Fields{}

	if dataJSON != "" {
		raw := []byte(dataJSON)

		if strings.HasPrefix(dataJSON, "@") {
			// The path comes from the user's own --data flag
			// #nosec G304
			data, err := os.ReadFile(dataJSON[1:])
			if err != nil {
				return nil, fmt.Errorf("reading data file: %w", err)
			}

			raw = data
		}

		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("parsing data JSON: %w", err)
		}
	}

	if len(args) > 0 {
		argFields, err := parseFields(args)
		if err != nil {
			return nil, err
		}

		for key, value := range argFields {
			fields[key] = value
		}
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsGiven
	}

	return fields, nil
}
