package sarvcrm

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedBatchType = errors.New("unsupported batch operation type")
	ErrBatchFieldsRequired  = errors.New("batch operation requires fields")
	ErrBatchIDRequired      = errors.New("batch operation requires a record id")
)

// BatchOperationType identifies what a batch operation does.
type BatchOperationType string

// Supported batch operation types.
const (
	BatchCreate BatchOperationType = "create"
	BatchUpdate BatchOperationType = "update"
	BatchDelete BatchOperationType = "delete"
	BatchGet    BatchOperationType = "get"
)

// BatchOperation describes one unit of work in a batch.
type BatchOperation struct {
	// Type selects create, update, delete, or get.
	Type BatchOperationType
	// Module is the wire name of the target module.
	Module string
	// ID addresses the record for update, delete, and get.
	ID string
	// Fields carries the record data for create and update.
	Fields Fields
}

// BatchResult is the outcome of one batch operation, in input order.
type BatchResult struct {
	Operation BatchOperation
	Success   bool
	// ID is the echoed record id for writes.
	ID string
	// Record is the fetched record for gets.
	Record Record
	// Error is the per-operation failure; other operations still run.
	Error error
}

// ModuleResolver looks module handles up by wire name. Client satisfies it.
type ModuleResolver interface {
	Module(name string) (ModuleClient, error)
}

// BatchExecutor runs independent module operations concurrently against one
// client. Failures are collected per operation rather than aborting the
// batch; the session token is shared, so callers log in once beforehand.
type BatchExecutor struct {
	client         ModuleResolver
	maxConcurrency int
}

// NewBatchExecutor creates an executor with the default concurrency cap.
func NewBatchExecutor(client ModuleResolver) *BatchExecutor {
	return &BatchExecutor{
		client:         client,
		maxConcurrency: constants.DefaultConcurrencyLimit,
	}
}

// WithMaxConcurrency bounds how many operations run at once.
func (e *BatchExecutor) WithMaxConcurrency(limit int) *BatchExecutor {
	if limit > 0 {
		if limit > constants.MaxConcurrencyLimit {
			limit = constants.MaxConcurrencyLimit
		}

		e.maxConcurrency = limit
	}

	return e
}

// Execute runs the operations and returns one result per operation, in the
// same order. The context cancels in-flight operations; operations that
// never started report the context error.
func (e *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.maxConcurrency)

	for i, operation := range operations {
		group.Go(func() error {
			results[i] = e.run(ctx, operation)

			return nil
		})
	}

	// Goroutines only record per-operation errors.
	_ = group.Wait()

	return results
}

func (e *BatchExecutor) run(ctx context.Context, operation BatchOperation) BatchResult {
	result := BatchResult{Operation: operation}

	if err := ctx.Err(); err != nil {
		result.Error = err

		return result
	}

	module, err := e.client.Module(operation.Module)
	if err != nil {
		result.Error = err

		return result
	}

	switch operation.Type {
	case BatchCreate:
		if operation.Fields == nil {
			result.Error = fmt.Errorf("%w: create %s", ErrBatchFieldsRequired, operation.Module)

			return result
		}

		result.ID, result.Error = module.Create(ctx, operation.Fields)

	case BatchUpdate:
		if operation.ID == "" {
			result.Error = fmt.Errorf("%w: update %s", ErrBatchIDRequired, operation.Module)

			return result
		}

		result.ID, result.Error = module.Update(ctx, operation.ID, operation.Fields)

	case BatchDelete:
		if operation.ID == "" {
			result.Error = fmt.Errorf("%w: delete %s", ErrBatchIDRequired, operation.Module)

			return result
		}

		result.ID, result.Error = module.Delete(ctx, operation.ID)

	case BatchGet:
		if operation.ID == "" {
			result.Error = fmt.Errorf("%w: get %s", ErrBatchIDRequired, operation.Module)

			return result
		}

		result.Record, result.Error = module.Get(ctx, operation.ID)

	default:
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedBatchType, operation.Type)
	}

	result.Success = result.Error == nil

	return result
}
