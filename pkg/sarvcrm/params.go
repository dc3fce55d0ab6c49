package sarvcrm

import (
	"fmt"
	"net/url"
)

// Operation is the server-side verb selected via the method query parameter.
type Operation string

// Operations recognized by the API endpoint.
const (
	OpLogin             Operation = "Login"
	OpSave              Operation = "Save"
	OpRetrieve          Operation = "Retrieve"
	OpGetModuleFields   Operation = "GetModuleFields"
	OpGetRelationship   Operation = "GetRelationship"
	OpSaveRelationships Operation = "SaveRelationships"
	OpSearchByNumber    Operation = "SearchByNumber"
)

// ModuleNamer is implemented by anything that can stand in for a module
// argument: descriptors and module handles both qualify.
type ModuleNamer interface {
	ModuleName() string
}

// ResolveModuleName resolves the wire name of a module argument. Accepted
// forms are nil (no module), a plain string, or any ModuleNamer. Anything
// else fails with ErrInvalidModuleType.
func ResolveModuleName(module interface{}) (string, error) {
	switch m := module.(type) {
	case nil:
		return "", nil
	case string:
		return m, nil
	case ModuleNamer:
		return m.ModuleName(), nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrInvalidModuleType, module)
	}
}

// BuildRequestParams assembles the query parameters for one API call:
// method (operation name) and module, merged with any extra parameters.
// Keys whose value is unset are omitted entirely, never sent empty.
func BuildRequestParams(op Operation, module interface{}, extra map[string]string) (url.Values, error) {
	name, err := ResolveModuleName(module)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	if op != "" {
		params.Set("method", string(op))
	}

	if name != "" {
		params.Set("module", name)
	}

	for key, value := range extra {
		if value != "" {
			params.Set(key, value)
		}
	}

	return params, nil
}
