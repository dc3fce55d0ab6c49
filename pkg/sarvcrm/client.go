package sarvcrm

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// ModuleClient is the per-module facade bound to a client. Handles are
// stateless: the session token and transport live in the owning client, so
// any number of handles can share one client.
type ModuleClient interface {
	// Descriptor returns the static identity of the module.
	Descriptor() ModuleDescriptor
	// ModuleName returns the wire name used in the module query parameter.
	ModuleName() string

	// Create inserts a record and returns the new id ("" when the server
	// does not echo one).
	Create(ctx context.Context, fields Fields) (string, error)
	// List retrieves records matching the options; nil opts list everything
	// the server returns by default.
	List(ctx context.Context, opts *ListOptions) ([]Record, error)
	// Get retrieves a single record by id. ErrEmptyResult when the server
	// finds no matching record.
	Get(ctx context.Context, id string) (Record, error)
	// Update overwrites fields of the record and returns the echoed id.
	Update(ctx context.Context, id string, fields Fields) (string, error)
	// Delete removes the record and returns the echoed id ("" when absent).
	Delete(ctx context.Context, id string) (string, error)
	// GetFields reports the module's field catalog.
	GetFields(ctx context.Context) (map[string]FieldDefinition, error)
	// GetRelationships lists records related through relatedField.
	GetRelationships(ctx context.Context, relatedField string, opts *ListOptions) ([]Record, error)
	// SaveRelationships links the given record ids through fieldName and
	// returns the server's view of the relationship rows.
	SaveRelationships(ctx context.Context, id, fieldName string, relatedIDs []string) ([]Record, error)
}

// SalesModules provides access to the sales pipeline modules.
type SalesModules interface {
	Accounts() ModuleClient
	Contacts() ModuleClient
	Leads() ModuleClient
	Opportunities() ModuleClient
	Campaigns() ModuleClient
	ScCompetitor() ModuleClient
	Vendors() ModuleClient
	Branches() ModuleClient
}

// ActivityModules provides access to the activity stream modules.
type ActivityModules interface {
	Calls() ModuleClient
	Meetings() ModuleClient
	Tasks() ModuleClient
	Notes() ModuleClient
	Emails() ModuleClient
	Appointments() ModuleClient
	Timesheet() ModuleClient
}

// SupportModules provides access to the service desk modules.
type SupportModules interface {
	Cases() ModuleClient
	Bugs() ModuleClient
	ServiceCenters() ModuleClient
	KnowledgeBase() ModuleClient
	KnowledgeBaseCategories() ModuleClient
	Approval() ModuleClient
}

// FinanceModules provides access to the billing modules.
type FinanceModules interface {
	AOSInvoices() ModuleClient
	AOSQuotes() ModuleClient
	Payments() ModuleClient
	Deposits() ModuleClient
	PurchaseOrder() ModuleClient
}

// ContractModules provides access to the contract modules.
type ContractModules interface {
	AOSContracts() ModuleClient
	ScContract() ModuleClient
	ScContractManagement() ModuleClient
	AOSPDFTemplates() ModuleClient
}

// CatalogModules provides access to the product catalog modules.
type CatalogModules interface {
	AOSProducts() ModuleClient
	AOSProductCategories() ModuleClient
	Documents() ModuleClient
}

// OutreachModules provides access to the bulk communication modules.
type OutreachModules interface {
	Communications() ModuleClient
	CommunicationsTarget() ModuleClient
	CommunicationsTemplate() ModuleClient
}

// ObjectiveModules provides access to the planning modules.
type ObjectiveModules interface {
	AsolProject() ModuleClient
	ObjConditions() ModuleClient
	ObjIndicators() ModuleClient
	ObjObjectives() ModuleClient
}

// ModuleAccessors groups the typed accessors for every known module.
type ModuleAccessors interface {
	SalesModules
	ActivityModules
	SupportModules
	FinanceModules
	ContractModules
	CatalogModules
	OutreachModules
	ObjectiveModules
}

// SessionClient owns the bearer-token lifecycle. The token is scoped to the
// client instance; an empty token means unauthenticated.
type SessionClient interface {
	// Login authenticates with the configured credentials, stores the
	// returned token, and returns it. ErrAuthenticationFailed when the
	// server answers without a usable token.
	Login(ctx context.Context) (string, error)
	// Logout clears the stored token. No network call is made; the server
	// session expires on its own.
	Logout()
	// Token returns the current session token, "" when unauthenticated.
	Token() string
	// SetToken seeds the session with an externally obtained token.
	SetToken(token string)
}

// RequestClient is the raw request surface underneath the module handles.
type RequestClient interface {
	// SendRequest performs one API call and returns the unwrapped data
	// payload. Method must be GET, POST, PUT, or DELETE.
	SendRequest(ctx context.Context, method string, query url.Values, body interface{}) (json.RawMessage, error)
	// RequestParams builds the query parameters for an operation; module
	// may be a handle, a descriptor, a string, or nil.
	RequestParams(op Operation, module interface{}, extra map[string]string) (url.Values, error)
	// SearchByNumber resolves a phone number to the records that mention
	// it, across all modules or within one.
	SearchByNumber(ctx context.Context, number string, module interface{}) (json.RawMessage, error)
}

// Client is the full API surface of a connected CRM client.
type Client interface {
	ModuleAccessors
	SessionClient
	RequestClient

	// Module looks up a handle by wire name. ErrUnknownModule when the
	// name is not in the module table.
	Module(name string) (ModuleClient, error)

	// Close releases optional resources such as cache connections. Clients
	// without a cache backend return nil.
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a sarvcrm.Client.
//
// # Credentials
//
// Password is hashed to its MD5 hex digest once at construction, as the API
// requires; set PasswordIsHashed when the value already is that digest. The
// plaintext is not retained. AccessToken seeds the session with a token
// obtained elsewhere, skipping Login entirely.
//
// # Timeouts, retries, and throttling
//
// The original protocol has no client-side timeout; Timeout is a deliberate
// hardening addition defaulting to 30 seconds. Retries are off by default
// (a failed call is one reported failure) and only enabled by setting
// RetryMax, which retries 5xx and 429 responses with backoff. RateLimit
// caps outgoing request rate client-side when a deployment enforces quotas.
type Config struct {
	// Required fields
	// BaseURL: the API endpoint every operation is multiplexed through.
	// sarvclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	BaseURL string

	// Credentials
	// UserType: the account type discriminator the server calls utype.
	UserType string
	// Username: account username.
	Username string
	// Password: account password, plaintext unless PasswordIsHashed.
	Password string
	// PasswordIsHashed: set when Password is already the MD5 hex digest.
	PasswordIsHashed bool
	// LoginType: optional login type discriminator, omitted when empty.
	LoginType string
	// Language: locale tag for server messages, defaults to en_US.
	Language string
	// AccessToken: optional pre-obtained session token.
	AccessToken string

	// Optional configurations
	// Timeout: per-request timeout. Zero means the 30 second default.
	Timeout time.Duration
	// RetryMax: maximum retries for 5xx/429 responses. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// RateLimit: client-side requests per second cap. Zero disables throttling.
	RateLimit float64
	// RateBurst: burst size for the rate limiter. Applied when RateLimit > 0.
	RateBurst int
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// FieldsCache: optional cache for GetFields results. Nil or type "none"
	// keeps the client cache-free, which is the protocol's default posture.
	FieldsCache *CacheConfig
}

// CacheType represents the cache backend for module field catalogs.
type CacheType string

const (
	// CacheTypeNone disables caching.
	CacheTypeNone CacheType = "none"

	// CacheTypeMemory caches in process memory.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS caches in a NATS JetStream key-value bucket, shared
	// across processes.
	CacheTypeNATS CacheType = "nats"
)

// CacheConfig configures the optional GetFields cache.
type CacheConfig struct {
	// Type is the cache backend type.
	Type CacheType

	// TTL is how long an entry stays valid. Zero means one hour.
	TTL time.Duration

	// MaxEntries bounds the memory backend. Zero means unbounded.
	MaxEntries int

	// NATSURL is the server URL for the NATS backend.
	NATSURL string

	// NATSBucket is the KV bucket name for the NATS backend.
	NATSBucket string
}
