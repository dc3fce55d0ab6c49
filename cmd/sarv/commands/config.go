package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Sarv CLI configuration stored under ~/.sarv",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the session token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print the session token
			display := *config
			if display.Token != "" {
				display.Token = constants.MaskedSecret
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return renderJSON(display)
			case constants.FormatYAML:
				return renderYAML(display)
			default:
				rows := [][]string{
					{"URL", formatConfigValue(display.URL)},
					{"User Type", formatConfigValue(display.UserType)},
					{"Username", formatConfigValue(display.Username)},
					{"Language", formatConfigValue(display.Language)},
					{"Token", formatConfigValue(display.Token)},
					{"Output", formatConfigValue(display.Output)},
				}

				return renderTable([]string{"Property", "Value"}, rows)
			}
		},
	}
}

func formatConfigValue(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: url, usertype, username, language, token, output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Clear one of: url, usertype, username, language, token, output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigValue(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

// applyConfigValue writes one key into the config struct.
func applyConfigValue(config *CLIConfig, key, value string) error {
	switch key {
	case "url":
		config.URL = value
	case "usertype":
		config.UserType = value
	case "username":
		config.Username = value
	case "language":
		config.Language = value
	case "token":
		config.Token = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}

	return nil
}
