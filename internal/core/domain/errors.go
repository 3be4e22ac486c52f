package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrStorageFailure = errors.New("storage failure")

	ErrInvalidHierarchyBinding = errors.New("invalid task hierarchy binding")
	ErrTaskSelfBinding         = fmt.Errorf("%w: can't bind task to itself", ErrInvalidHierarchyBinding)
	ErrTaskHierarchyCycle      = fmt.Errorf("%w: can't bind task to its subtask", ErrInvalidHierarchyBinding)

	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidContinuationToken = fmt.Errorf("%w: malformed continuation token", ErrInvalidInput)
	ErrInvalidTake              = fmt.Errorf("%w: take must be positive", ErrInvalidInput)
	ErrInvalidSortField         = fmt.Errorf("%w: unknown sort field", ErrInvalidInput)
	ErrInvalidTaskDetails       = fmt.Errorf("%w: invalid task details", ErrInvalidInput)
	ErrInvalidSearchPhrase      = fmt.Errorf("%w: search phrase is empty", ErrInvalidInput)
)

// StorageError marks err as a failure of the underlying store while keeping
// it inspectable with errors.Is / errors.As.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageFailure, err)
}
