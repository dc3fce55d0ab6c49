package sarvcrm

import (
	"context"
	"fmt"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
)

// ListPager walks a module listing in fixed-size pages by advancing the
// limit/offset pair until the server returns a short page. The Retrieve
// operation reports no total count, so exhaustion is detected from page
// length.
type ListPager struct {
	module   ModuleClient
	opts     ListOptions
	pageSize int
	offset   int
	done     bool
	pages    int
}

// NewListPager creates a pager over module using opts as the filter
// template; its Limit and Offset are managed by the pager. A pageSize of
// zero selects the default page size.
func NewListPager(module ModuleClient, opts *ListOptions, pageSize int) *ListPager {
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	pager := &ListPager{
		module:   module,
		pageSize: pageSize,
	}

	if opts != nil {
		pager.opts = *opts
		pager.offset = opts.Offset
	}

	return pager
}

// HasNext reports whether another page may remain.
func (p *ListPager) HasNext() bool {
	return !p.done
}

// NextPage fetches the next page of records. ErrNoMorePages after the
// listing is exhausted.
func (p *ListPager) NextPage(ctx context.Context) ([]Record, error) {
	if p.done {
		return nil, ErrNoMorePages
	}

	opts := p.opts
	opts.Limit = p.pageSize
	opts.Offset = p.offset

	records, err := p.module.List(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("fetching page at offset %d: %w", p.offset, err)
	}

	p.offset += len(records)
	p.pages++

	if len(records) < p.pageSize || p.pages >= constants.MaxPages {
		p.done = true
	}

	return records, nil
}

// All drains the remaining pages into one slice.
func (p *ListPager) All(ctx context.Context) ([]Record, error) {
	var all []Record

	for p.HasNext() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
	}

	return all, nil
}
