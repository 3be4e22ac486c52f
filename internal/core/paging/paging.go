// Package paging implements the continuation-token protocol shared by task
// listing, task search and audit log retrieval.
//
// A continuation token is the decimal row offset of the next page. An empty
// token starts from the beginning. The next token advances by the number of
// rows actually returned, so asking past the end yields an empty page and the
// same token again.
package paging

import (
	"math"
	"strconv"
	"strings"

	"todolist/internal/core/domain"
)

const (
	DefaultTake = 20
	MaxTake     = 1000
)

// Cursor is a parsed page request.
type Cursor struct {
	Offset uint64
	Take   int
}

// Parse validates take and decodes token.
func Parse(token string, take int) (Cursor, error) {
	if take <= 0 {
		return Cursor{}, domain.ErrInvalidTake
	}
	if take > MaxTake {
		take = MaxTake
	}

	offset, err := ParseToken(token)
	if err != nil {
		return Cursor{}, err
	}
	return Cursor{Offset: offset, Take: take}, nil
}

// ParseToken decodes a continuation token into an offset.
func ParseToken(token string) (uint64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.ParseUint(token, 10, 64)
	if err != nil || offset > math.MaxInt64 {
		return 0, domain.ErrInvalidContinuationToken
	}
	return offset, nil
}

// Next returns the token of the page following one that returned n rows.
func (c Cursor) Next(n int) string {
	if n > c.Take {
		n = c.Take
	}
	if n < 0 {
		n = 0
	}
	return strconv.FormatUint(c.Offset+uint64(n), 10)
}

// NewBatch trims items to the page size and attaches the next token.
func NewBatch[T any](c Cursor, items []T) domain.Batch[T] {
	if len(items) > c.Take {
		items = items[:c.Take]
	}
	if items == nil {
		items = make([]T, 0)
	}
	return domain.Batch[T]{
		Items:             items,
		ContinuationToken: c.Next(len(items)),
	}
}
