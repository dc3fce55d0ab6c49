package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvclient"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// maxListColumns caps how many columns a record listing table shows. Wide
// modules stay readable; the full record is available with --output json.
const maxListColumns = 6

// Common static errors used throughout the commands package.
var (
	ErrURLRequired        = errors.New("API URL is required (use --url, SARV_URL, or 'sarv login')")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidFieldFormat = errors.New("invalid field format, expected key=value")
	ErrNoFieldsGiven      = errors.New("at least one field is required")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrNoOperationsInFile = errors.New("no operations found in file")
)

// CLIConfig is the on-disk CLI configuration saved under ~/.sarv.
type CLIConfig struct {
	URL      string `json:"url,omitempty"      yaml:"url,omitempty"`
	UserType string `json:"usertype,omitempty" yaml:"usertype,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Token    string `json:"token,omitempty"    yaml:"token,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// loadConfig assembles the effective configuration. Flags, environment, and
// the config file are merged by viper in that precedence order.
func loadConfig() *CLIConfig {
	return &CLIConfig{
		URL:      viper.GetString("url"),
		UserType: viper.GetString("usertype"),
		Username: viper.GetString("username"),
		Language: viper.GetString("language"),
		Token:    viper.GetString("token"),
		Output:   viper.GetString("output"),
	}
}

// saveConfig writes the configuration to the file viper loaded, or to the
// default location when none was used yet.
func saveConfig(config *CLIConfig) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".sarv")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createClient builds a client from the effective configuration. The stored
// session token is used as-is; commands needing a fresh session run login.
func createClient() (sarvcrm.Client, error) {
	config := loadConfig()
	if config.URL == "" {
		return nil, ErrURLRequired
	}

	return sarvclient.New(&sarvcrm.Config{
		BaseURL:     config.URL,
		AccessToken: config.Token,
		Language:    config.Language,
		Debug:       viper.GetBool("debug"),
		Logger:      newLogger(),
	})
}

// parseFields converts key=value arguments into record fields.
func parseFields(args []string) (sarvcrm.Fields, error) {
	if len(args) == 0 {
		return nil, ErrNoFieldsGiven
	}

	fields := make(sarvcrm.Fields, len(args))

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldFormat, arg)
		}

		fields[key] = value
	}

	return fields, nil
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// renderTable prints headers and rows as a table on stdout.
func renderTable(headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)

	cells := make([]interface{}, len(headers))
	for i, header := range headers {
		cells[i] = header
	}

	table.Header(cells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatValue renders one record value for table output. Nested structures
// are compacted to JSON.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	}
}

// recordColumns derives table columns from the records: id first, then the
// remaining keys alphabetically, capped at maxListColumns.
func recordColumns(records []sarvcrm.Record) []string {
	seen := make(map[string]bool)

	var keys []string

	for _, record := range records {
		for key := range record {
			if key == "id" || seen[key] {
				continue
			}

			seen[key] = true

			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	if len(keys) > maxListColumns-1 {
		keys = keys[:maxListColumns-1]
	}

	return append([]string{"id"}, keys...)
}

// renderRecords prints a record listing in the selected output format.
func renderRecords(records []sarvcrm.Record) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(records)
	case constants.FormatYAML:
		return renderYAML(records)
	default:
		if len(records) == 0 {
			_, _ = os.Stdout.WriteString("No records found\n")

			return nil
		}

		columns := recordColumns(records)

		rows := make([][]string, 0, len(records))
		for _, record := range records {
			row := make([]string, len(columns))
			for i, column := range columns {
				row[i] = formatValue(record[column])
			}

			rows = append(rows, row)
		}

		return renderTable(columns, rows)
	}
}

// renderRecord prints a single record in the selected output format.
func renderRecord(record sarvcrm.Record) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(record)
	case constants.FormatYAML:
		return renderYAML(record)
	default:
		keys := make([]string, 0, len(record))
		for key := range record {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			rows = append(rows, []string{key, formatValue(record[key])})
		}

		return renderTable([]string{"Field", "Value"}, rows)
	}
}

// renderRaw prints a raw data payload. The payload shape varies per server,
// so the table format falls back to indented JSON.
func renderRaw(data json.RawMessage) error {
	if viper.GetString("output") == constants.FormatYAML {
		var v interface{}
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("parsing payload: %w", err)
		}

		return renderYAML(v)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", constants.JSONIndentSize)); err != nil {
		_, _ = os.Stdout.Write(data)
		_, _ = os.Stdout.WriteString("\n")

		return nil
	}

	_, _ = buf.WriteTo(os.Stdout)
	_, _ = os.Stdout.WriteString("\n")

	return nil
}
