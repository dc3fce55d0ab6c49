package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// ModuleHandle implements sarvcrm.ModuleClient for one module. Handles are
// stateless facades: every module speaks the same operation set, so one
// implementation parameterized by descriptor covers the whole table.
type ModuleHandle struct {
	client     *Client
	descriptor sarvcrm.ModuleDescriptor
}

// NewModuleHandle creates a handle bound to client.
func NewModuleHandle(client *Client, descriptor sarvcrm.ModuleDescriptor) *ModuleHandle {
	return &ModuleHandle{
		client:     client,
		descriptor: descriptor,
	}
}

// Descriptor implements sarvcrm.ModuleClient.Descriptor.
func (h *ModuleHandle) Descriptor() sarvcrm.ModuleDescriptor {
	return h.descriptor
}

// ModuleName implements sarvcrm.ModuleClient.ModuleName. It also satisfies
// sarvcrm.ModuleNamer, so a handle can be passed wherever an operation
// takes a module.
func (h *ModuleHandle) ModuleName() string {
	return h.descriptor.Name
}

// Create implements sarvcrm.ModuleClient.Create.
func (h *ModuleHandle) Create(ctx context.Context, fields sarvcrm.Fields) (string, error) {
	query, err := h.params(sarvcrm.OpSave, nil)
	if err != nil {
		return "", err
	}

	payload, err := h.client.send(ctx, http.MethodPost, query, fields)
	if err != nil {
		return "", fmt.Errorf("creating record in %s: %w", h.descriptor.Name, err)
	}

	return recordID(payload)
}

// List implements sarvcrm.ModuleClient.List.
func (h *ModuleHandle) List(ctx context.Context, opts *sarvcrm.ListOptions) ([]sarvcrm.Record, error) {
	query, err := h.params(sarvcrm.OpRetrieve, nil)
	if err != nil {
		return nil, err
	}

	payload, err := h.client.send(ctx, http.MethodPost, query, opts.Body())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", h.descriptor.Name, err)
	}

	return decodeRecords(payload)
}

// Get implements sarvcrm.ModuleClient.Get.
func (h *ModuleHandle) Get(ctx context.Context, id string) (sarvcrm.Record, error) {
	query, err := h.params(sarvcrm.OpRetrieve, map[string]string{"id": id})
	if err != nil {
		return nil, err
	}

	payload, err := h.client.send(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, fmt.Errorf("getting record %s from %s: %w", id, h.descriptor.Name, err)
	}

	records, err := decodeRecords(payload)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s %q", sarvcrm.ErrEmptyResult, h.descriptor.Name, id)
	}

	return records[0], nil
}

// Update implements sarvcrm.ModuleClient.Update.
func (h *ModuleHandle) Update(ctx context.Context, id string, fields sarvcrm.Fields) (string, error) {
	query, err := h.params(sarvcrm.OpSave, map[string]string{"id": id})
	if err != nil {
		return "", err
	}

	payload, err := h.client.send(ctx, http.MethodPut, query, fields)
	if err != nil {
		return "", fmt.Errorf("updating record %s in %s: %w", id, h.descriptor.Name, err)
	}

	return recordID(payload)
}

// Delete implements sarvcrm.ModuleClient.Delete.
func (h *ModuleHandle) Delete(ctx context.Context, id string) (string, error) {
	query, err := h.params(sarvcrm.OpSave, map[string]string{"id": id})
	if err != nil {
		return "", err
	}

	payload, err := h.client.send(ctx, http.MethodDelete, query, nil)
	if err != nil {
		return "", fmt.Errorf("deleting record %s from %s: %w", id, h.descriptor.Name, err)
	}

	return recordID(payload)
}

// GetFields implements sarvcrm.ModuleClient.GetFields. Results go through
// the optional fields cache; the default no-op cache always misses.
func (h *ModuleHandle) GetFields(ctx context.Context) (map[string]sarvcrm.FieldDefinition, error) {
	cacheKey := "fields." + h.descriptor.Name

	if cached, ok := h.client.fieldsCache.Get(ctx, cacheKey); ok {
		fields, err := decodeFields(cached)
		if err == nil {
			return fields, nil
		}
	}

	query, err := h.params(sarvcrm.OpGetModuleFields, nil)
	if err != nil {
		return nil, err
	}

	payload, err := h.client.send(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fields of %s: %w", h.descriptor.Name, err)
	}

	fields, err := decodeFields(payload)
	if err != nil {
		return nil, err
	}

	_ = h.client.fieldsCache.Set(ctx, cacheKey, payload)

	return fields, nil
}

// GetRelationships implements sarvcrm.ModuleClient.GetRelationships.
func (h *ModuleHandle) GetRelationships(ctx context.Context, relatedField string, opts *sarvcrm.ListOptions) ([]sarvcrm.Record, error) {
	query, err := h.params(sarvcrm.OpGetRelationship, map[string]string{"related_field": relatedField})
	if err != nil {
		return nil, err
	}

	payload, err := h.client.send(ctx, http.MethodPost, query, opts.Body())
	if err != nil {
		return nil, fmt.Errorf("listing %s related through %s: %w", h.descriptor.Name, relatedField, err)
	}

	return decodeRecords(payload)
}

// SaveRelationships implements sarvcrm.ModuleClient.SaveRelationships.
func (h *ModuleHandle) SaveRelationships(ctx context.Context, id, fieldName string, relatedIDs []string) ([]sarvcrm.Record, error) {
	query, err := h.params(sarvcrm.OpSaveRelationships, map[string]string{"id": id})
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"field_name":      fieldName,
		"related_records": relatedIDs,
	}

	payload, err := h.client.send(ctx, http.MethodPost, query, body)
	if err != nil {
		return nil, fmt.Errorf("saving relationships of %s in %s: %w", id, h.descriptor.Name, err)
	}

	return decodeRecords(payload)
}

// params builds the query for an operation scoped to this module.
func (h *ModuleHandle) params(op sarvcrm.Operation, extra map[string]string) (url.Values, error) {
	query, err := sarvcrm.BuildRequestParams(op, h.descriptor, extra)
	if err != nil {
		return nil, fmt.Errorf("building %s parameters: %w", op, err)
	}

	return query, nil
}

// recordID pulls the echoed id out of a Save payload. Some deployments
// answer delete without one; that is an empty id, not an error.
func recordID(payload json.RawMessage) (string, error) {
	if isEmptyPayload(payload) {
		return "", nil
	}

	var result struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(payload, &result); err != nil {
		return "", fmt.Errorf("parsing save response: %w", err)
	}

	return result.ID, nil
}

// decodeRecords parses a list payload. An empty payload ({} or null) means
// no records rather than a malformed response.
func decodeRecords(payload json.RawMessage) ([]sarvcrm.Record, error) {
	if isEmptyPayload(payload) {
		return nil, nil
	}

	var records []sarvcrm.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("parsing record list: %w", err)
	}

	return records, nil
}

// decodeFields parses a field catalog payload.
func decodeFields(payload json.RawMessage) (map[string]sarvcrm.FieldDefinition, error) {
	var fields map[string]sarvcrm.FieldDefinition
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("parsing field catalog: %w", err)
	}

	return fields, nil
}

// isEmptyPayload reports whether the data payload carries nothing, which
// the server signals as {} or null.
func isEmptyPayload(payload json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(payload))

	return trimmed == "" || trimmed == "{}" || trimmed == "null"
}
