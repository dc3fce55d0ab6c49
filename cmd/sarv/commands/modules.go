package commands

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// NewModulesCommand creates the modules command group.
func NewModulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "modules",
		Aliases: []string{"mod"},
		Short:   "Inspect CRM modules",
		Long:    "List available CRM modules and inspect their field catalogs",
	}

	cmd.AddCommand(newModulesListCommand())
	cmd.AddCommand(newModulesFieldsCommand())

	return cmd
}

func newModulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available modules",
		Long:  "List every module known to the client with its display labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return renderJSON(sarvcrm.Modules)
			case constants.FormatYAML:
				return renderYAML(sarvcrm.Modules)
			default:
				rows := make([][]string, 0, len(sarvcrm.Modules))
				for _, descriptor := range sarvcrm.Modules {
					rows = append(rows, []string{descriptor.Name, descriptor.LabelEN, descriptor.LabelFA})
				}

				return renderTable([]string{"Name", "Label", "Persian Label"}, rows)
			}
		},
	}
}

func newModulesFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields MODULE",
		Short: "Show the field catalog of a module",
		Long:  "Fetch the field definitions of a module from the server",
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

			fields, err := module.GetFields(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get fields of %s: %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return renderJSON(fields)
			case constants.FormatYAML:
				return renderYAML(fields)
			default:
				names := make([]string, 0, len(fields))
				for name := range fields {
					names = append(names, name)
				}

				sort.Strings(names)

				rows := make([][]string, 0, len(names))
				for _, name := range names {
					definition := fields[name]
					rows = append(rows, []string{
						name,
						definition.Type(),
						strconv.FormatBool(definition.Required()),
						definition.Label(),
					})
				}

				return renderTable([]string{"Field", "Type", "Required", "Label"}, rows)
			}
		},
	}
}
