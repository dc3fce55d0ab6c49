package sarvcrm_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// Static test error for err113 compliance.
var errListFailed = errors.New("list failed")

// fakeModule implements sarvcrm.ModuleClient over an in-memory record set.
type fakeModule struct {
	descriptor sarvcrm.ModuleDescriptor
	records    []sarvcrm.Record
	listErr    error
	listCalls  []*sarvcrm.ListOptions
}

func newFakeModule(name string, records ...sarvcrm.Record) *fakeModule {
	return &fakeModule{
		descriptor: sarvcrm.ModuleDescriptor{Name: name, LabelEN: name, LabelFA: name},
		records:    records,
	}
}

func (m *fakeModule) Descriptor() sarvcrm.ModuleDescriptor {
	return m.descriptor
}

func (m *fakeModule) ModuleName() string {
	return m.descriptor.Name
}

func (m *fakeModule) Create(_ context.Context, fields sarvcrm.Fields) (string, error) {
	record := sarvcrm.Record{"id": fmt.Sprintf("%s-%d", m.descriptor.Name, len(m.records)+1)}
	for key, value := range fields {
		record[key] = value
	}

	m.records = append(m.records, record)

	return record.ID(), nil
}

func (m *fakeModule) List(_ context.Context, opts *sarvcrm.ListOptions) ([]sarvcrm.Record, error) {
	m.listCalls = append(m.listCalls, opts)

	if m.listErr != nil {
		return nil, m.listErr
	}

	offset, limit := 0, len(m.records)
	if opts != nil {
		offset = opts.Offset
		if opts.Limit > 0 {
			limit = opts.Limit
		}
	}

	if offset >= len(m.records) {
		return []sarvcrm.Record{}, nil
	}

	end := offset + limit
	if end > len(m.records) {
		end = len(m.records)
	}

	return m.records[offset:end], nil
}

func (m *fakeModule) Get(_ context.Context, id string) (sarvcrm.Record, error) {
	for _, record := range m.records {
		if record.ID() == id {
			return record, nil
		}
	}

	return nil, sarvcrm.ErrEmptyResult
}

func (m *fakeModule) Update(_ context.Context, id string, fields sarvcrm.Fields) (string, error) {
	for _, record := range m.records {
		if record.ID() == id {
			for key, value := range fields {
				record[key] = value
			}

			return id, nil
		}
	}

	return "", &sarvcrm.APIError{StatusCode: 404, Message: "no such record"}
}

func (m *fakeModule) Delete(_ context.Context, id string) (string, error) {
	for i, record := range m.records {
		if record.ID() == id {
			m.records = append(m.records[:i], m.records[i+1:]...)

			return id, nil
		}
	}

	return "", &sarvcrm.APIError{StatusCode: 404, Message: "no such record"}
}

func (m *fakeModule) GetFields(_ context.Context) (map[string]sarvcrm.FieldDefinition, error) {
	return map[string]sarvcrm.FieldDefinition{"name": {"type": "varchar"}}, nil
}

func (m *fakeModule) GetRelationships(_ context.Context, _ string, _ *sarvcrm.ListOptions) ([]sarvcrm.Record, error) {
	return nil, nil
}

func (m *fakeModule) SaveRelationships(_ context.Context, _, _ string, _ []string) ([]sarvcrm.Record, error) {
	return nil, nil
}

func makeRecords(prefix string, n int) []sarvcrm.Record {
	records := make([]sarvcrm.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, sarvcrm.Record{"id": fmt.Sprintf("%s-%d", prefix, i)})
	}

	return records
}

func TestListPager_WalksPages(t *testing.T) {
	t.Parallel()

	module := newFakeModule("Contacts", makeRecords("c", 5)...)
	pager := sarvcrm.NewListPager(module, nil, 2)

	ctx := context.Background()

	var pages [][]sarvcrm.Record

	for pager.HasNext() {
		page, err := pager.NextPage(ctx)
		require.NoError(t, err)
		pages = append(pages, page)
	}

	require.Len(t, pages, 3)
	assert.Len(t, pages[0], 2)
	assert.Len(t, pages[1], 2)
	assert.Len(t, pages[2], 1)
	assert.Equal(t, "c-5", pages[2][0].ID())

	_, err := pager.NextPage(ctx)
	require.ErrorIs(t, err, sarvcrm.ErrNoMorePages)
}

func TestListPager_All(t *testing.T) {
	t.Parallel()

	module := newFakeModule("Leads", makeRecords("l", 7)...)
	pager := sarvcrm.NewListPager(module, &sarvcrm.ListOptions{OrderBy: "date_entered"}, 3)

	all, err := pager.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 7)

	// Every page carried the filter template.
	for _, call := range module.listCalls {
		require.NotNil(t, call)
		assert.Equal(t, "date_entered", call.OrderBy)
		assert.Equal(t, 3, call.Limit)
	}
}

func TestListPager_ExactPageBoundary(t *testing.T) {
	t.Parallel()

	module := newFakeModule("Bugs", makeRecords("b", 4)...)
	pager := sarvcrm.NewListPager(module, nil, 2)

	ctx := context.Background()

	first, err := pager.NextPage(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := pager.NextPage(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)

	// The dataset size is a multiple of the page size, so exhaustion shows
	// up as one final empty page.
	require.True(t, pager.HasNext())

	last, err := pager.NextPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, last)
	assert.False(t, pager.HasNext())
}

func TestListPager_PropagatesErrors(t *testing.T) {
	t.Parallel()

	module := newFakeModule("Calls")
	module.listErr = errListFailed

	pager := sarvcrm.NewListPager(module, nil, 0)

	_, err := pager.NextPage(context.Background())
	require.ErrorIs(t, err, errListFailed)
	assert.Contains(t, err.Error(), "offset 0")
}
