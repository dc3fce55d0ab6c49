package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests. The wire
	// protocol has none; this is a deliberate hardening default.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are disabled unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum wait time between opted-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between opted-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency and batching limits.
const (
	// DefaultConcurrencyLimit limits concurrent batch operations.
	DefaultConcurrencyLimit = 3

	// MaxConcurrencyLimit caps caller-requested batch concurrency.
	MaxConcurrencyLimit = 10
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of records per page.
	DefaultPageSize = 20

	// MaxPages prevents runaway pagination loops.
	MaxPages = 1000
)

// Cache sizing.
const (
	// DefaultCacheTTL is the default time-to-live for field catalog entries.
	DefaultCacheTTL = 1 * time.Hour

	// DefaultCacheSize is the default entry limit for the memory backend.
	DefaultCacheSize = 100
)

// Wire protocol fields.
const (
	// HeaderContentType is sent with every request.
	HeaderContentType = "application/json"

	// DefaultLanguage is the locale used when none is configured.
	DefaultLanguage = "en_US"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
