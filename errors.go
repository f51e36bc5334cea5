package vecscore

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecscore/hwcounter"
	"github.com/hupe1980/vecscore/query"
	"github.com/hupe1980/vecscore/storage"
	"github.com/hupe1980/vecscore/vector"
)

var (
	// ErrInvalidVector is returned when a vector is malformed, e.g. a sparse
	// vector with repeated indices.
	ErrInvalidVector = errors.New("invalid vector")

	// ErrInvalidParallelism is returned when parallelism is negative.
	ErrInvalidParallelism = errors.New("parallelism must not be negative")

	// ErrBudgetExhausted is returned when a checked hardware budget is exceeded.
	ErrBudgetExhausted = hwcounter.ErrBudgetExhausted

	// ErrNilQuery is returned when no query is supplied.
	ErrNilQuery = query.ErrNilQuery

	// ErrWrongDimension is returned when a dense vector does not match the storage dimension.
	ErrWrongDimension = storage.ErrWrongDimension
)

// ErrDuplicateIndex indicates a sparse vector that repeats an index.
//
// It matches ErrInvalidVector with errors.Is, and errors.As still reaches
// the underlying *vector.ErrDuplicateIndex.
type ErrDuplicateIndex struct {
	Index uint32
	cause error
}

func (e *ErrDuplicateIndex) Error() string {
	return fmt.Sprintf("%v: duplicate sparse index %d", ErrInvalidVector, e.Index)
}

func (e *ErrDuplicateIndex) Unwrap() []error { return []error{ErrInvalidVector, e.cause} }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dup *vector.ErrDuplicateIndex
	if errors.As(err, &dup) {
		return &ErrDuplicateIndex{Index: dup.Index, cause: err}
	}
	if errors.Is(err, vector.ErrLengthMismatch) {
		return fmt.Errorf("%w: %w", ErrInvalidVector, err)
	}

	return err
}
