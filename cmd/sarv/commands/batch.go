package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// ErrBatchFailed reports that at least one batch operation failed.
var ErrBatchFailed = errors.New("batch completed with failures")

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run a batch of record operations",
		Long: `Run a batch of record operations described in a YAML or JSON file.

Each entry names an operation type (create, update, delete, get), the target
module, and an id or fields as the type requires:

  - type: create
    module: Contacts
    fields:
      last_name: Holmes
  - type: delete
    module: Leads
    id: "42"

Operations run concurrently; failures are reported per operation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operations, err := readOperations(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			executor := sarvcrm.NewBatchExecutor(client).WithMaxConcurrency(concurrency)
			results := executor.Execute(context.Background(), operations)

			return renderBatchResults(results)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "operations to run at once (default 3)")

	return cmd
}

// readOperations loads batch operations from a YAML or JSON file. YAML is a
// superset of JSON, so one parser covers both.
func readOperations(path string) ([]sarvcrm.BatchOperation, error) {
	// The path comes from the user's own argument
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading operations file: %w", err)
	}

	var operations []sarvcrm.BatchOperation
	if err := yaml.Unmarshal(data, &operations); err != nil {
		return nil, fmt.Errorf("parsing operations file: %w", err)
	}

	if len(operations) == 0 {
		return nil, ErrNoOperationsInFile
	}

	return operations, nil
}

// batchSummary is the serializable view of one batch result.
type batchSummary struct {
	Type    string         `json:"type"             yaml:"type"`
	Module  string         `json:"module"           yaml:"module"`
	Success bool           `json:"success"          yaml:"success"`
	ID      string         `json:"id,omitempty"     yaml:"id,omitempty"`
	Record  sarvcrm.Record `json:"record,omitempty" yaml:"record,omitempty"`
	Error   string         `json:"error,omitempty"  yaml:"error,omitempty"`
}

func batchSummaries(results []sarvcrm.BatchResult) []batchSummary {
	summaries := make([]batchSummary, 0, len(results))

	for _, result := range results {
		summary := batchSummary{
			Type:    string(result.Operation.Type),
			Module:  result.Operation.Module,
			Success: result.Success,
			ID:      result.ID,
			Record:  result.Record,
		}

		if result.Error != nil {
			summary.Error = result.Error.Error()
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func renderBatchResults(results []sarvcrm.BatchResult) error {
	failed := 0

	for _, result := range results {
		if !result.Success {
			failed++
		}
	}

	var err error

	switch viper.GetString("output") {
	case constants.FormatJSON:
		err = renderJSON(batchSummaries(results))
	case constants.FormatYAML:
		err = renderYAML(batchSummaries(results))
	default:
		rows := make([][]string, 0, len(results))

		for _, result := range results {
			status := "ok"
			detail := result.ID

			switch {
			case !result.Success:
				status = "failed"
				detail = result.Error.Error()
			case result.Record != nil:
				detail = result.Record.ID()
			}

			rows = append(rows, []string{string(result.Operation.Type), result.Operation.Module, status, detail})
		}

		err = renderTable([]string{"Operation", "Module", "Status", "Detail"}, rows)
		if err == nil {
			fmt.Printf("%d succeeded, %d failed\n", len(results)-failed, failed)
		}
	}

	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}

	return nil
}
