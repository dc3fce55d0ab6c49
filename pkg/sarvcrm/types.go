package sarvcrm

import (
	"encoding/json"
)

// Record represents a single CRM record as returned by the API. Field sets
// vary per module and per deployment, so records stay schemaless.
type Record map[string]interface{}

// ID returns the record's id field, or "" when absent.
func (r Record) ID() string {
	id, _ := r["id"].(string)

	return id
}

// Fields represents the field data sent when creating or updating a record.
type Fields map[string]interface{}

// FieldDefinition describes one module field as reported by the
// GetModuleFields operation (type, label, required flag and so on).
type FieldDefinition map[string]interface{}

// Type returns the field's type tag, or "" when absent.
func (d FieldDefinition) Type() string {
	fieldType, _ := d["type"].(string)

	return fieldType
}

// Label returns the field's display label, or "" when absent.
func (d FieldDefinition) Label() string {
	label, _ := d["label"].(string)

	return label
}

// Required reports whether the field is mandatory.
func (d FieldDefinition) Required() bool {
	required, _ := d["required"].(bool)

	return required
}

// Envelope is the JSON wrapper every response uses regardless of status.
type Envelope struct {
	Data    json.RawMessage `json:"data,omitempty"    yaml:"data,omitempty"`
	Message string          `json:"message,omitempty" yaml:"message,omitempty"`
}

// ListOptions narrows a Retrieve or GetRelationship call. Zero values are
// treated as unset and never reach the wire.
type ListOptions struct {
	Query        string   `json:"query,omitempty"         yaml:"query,omitempty"`
	OrderBy      string   `json:"order_by,omitempty"      yaml:"order_by,omitempty"`
	SelectFields []string `json:"select_fields,omitempty" yaml:"select_fields,omitempty"`
	Limit        int      `json:"limit,omitempty"         yaml:"limit,omitempty"`
	Offset       int      `json:"offset,omitempty"        yaml:"offset,omitempty"`
}

// Body returns the request body for the options with unset values dropped.
// A nil receiver yields an empty body, which serializes as {}.
func (o *ListOptions) Body() map[string]interface{} {
	body := map[string]interface{}{}
	if o == nil {
		return body
	}

	if o.Query != "" {
		body["query"] = o.Query
	}

	if o.OrderBy != "" {
		body["order_by"] = o.OrderBy
	}

	if len(o.SelectFields) > 0 {
		body["select_fields"] = o.SelectFields
	}

	if o.Limit > 0 {
		body["limit"] = o.Limit
	}

	if o.Offset > 0 {
		body["offset"] = o.Offset
	}

	return body
}

// Supported language tags for the login request.
const (
	LanguageEnglish = "en_US"
	LanguagePersian = "fa_IR"
)
