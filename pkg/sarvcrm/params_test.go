package sarvcrm_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

type namedModule struct {
	name string
}

func (m namedModule) ModuleName() string {
	return m.name
}

func TestBuildRequestParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		op       sarvcrm.Operation
		module   interface{}
		extra    map[string]string
		expected url.Values
	}{
		{
			name:     "operation only",
			op:       sarvcrm.OpLogin,
			module:   nil,
			expected: url.Values{"method": []string{"Login"}},
		},
		{
			name:   "operation with string module",
			op:     sarvcrm.OpRetrieve,
			module: "Contacts",
			expected: url.Values{
				"method": []string{"Retrieve"},
				"module": []string{"Contacts"},
			},
		},
		{
			name:   "operation with descriptor module",
			op:     sarvcrm.OpSave,
			module: sarvcrm.ModuleDescriptor{Name: "Leads", LabelEN: "Leads"},
			expected: url.Values{
				"method": []string{"Save"},
				"module": []string{"Leads"},
			},
		},
		{
			name:   "operation with module namer",
			op:     sarvcrm.OpGetModuleFields,
			module: namedModule{name: "Accounts"},
			expected: url.Values{
				"method": []string{"GetModuleFields"},
				"module": []string{"Accounts"},
			},
		},
		{
			name:   "extra parameters merged",
			op:     sarvcrm.OpSave,
			module: "Contacts",
			extra:  map[string]string{"id": "abc-123"},
			expected: url.Values{
				"method": []string{"Save"},
				"module": []string{"Contacts"},
				"id":     []string{"abc-123"},
			},
		},
		{
			name:   "unset extra values dropped",
			op:     sarvcrm.OpGetRelationship,
			module: "Accounts",
			extra:  map[string]string{"related_field": "contacts", "id": ""},
			expected: url.Values{
				"method":        []string{"GetRelationship"},
				"module":        []string{"Accounts"},
				"related_field": []string{"contacts"},
			},
		},
		{
			name:     "empty operation dropped",
			op:       "",
			module:   nil,
			extra:    map[string]string{"number": "+982122334455"},
			expected: url.Values{"number": []string{"+982122334455"}},
		},
		{
			name:     "empty string module dropped",
			op:       sarvcrm.OpSearchByNumber,
			module:   "",
			expected: url.Values{"method": []string{"SearchByNumber"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, err := sarvcrm.BuildRequestParams(tt.op, tt.module, tt.extra)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestBuildRequestParams_InvalidModuleType(t *testing.T) {
	t.Parallel()

	_, err := sarvcrm.BuildRequestParams(sarvcrm.OpRetrieve, 42, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, sarvcrm.ErrInvalidModuleType)
	assert.Contains(t, err.Error(), "int")
}

func TestResolveModuleName(t *testing.T) {
	t.Parallel()

	name, err := sarvcrm.ResolveModuleName(nil)
	require.NoError(t, err)
	assert.Empty(t, name)

	name, err = sarvcrm.ResolveModuleName("Bugs")
	require.NoError(t, err)
	assert.Equal(t, "Bugs", name)

	descriptor, ok := sarvcrm.FindModule("AOS_Invoices")
	require.True(t, ok)

	name, err = sarvcrm.ResolveModuleName(descriptor)
	require.NoError(t, err)
	assert.Equal(t, "AOS_Invoices", name)

	_, err = sarvcrm.ResolveModuleName(struct{}{})
	require.ErrorIs(t, err, sarvcrm.ErrInvalidModuleType)
}
