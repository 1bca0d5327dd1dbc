/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package page provides the pagination request and response shapes used by
// list operations.
//
// Request normalizes client input instead of rejecting it: an out-of-range
// page or size is clamped to the nearest legal value, so a list endpoint never
// fails on pagination parameters alone. Page[T] is the corresponding response
// window with derived navigation flags.
package page

import "strconv"

const (
	// DefaultNumber is the page used when the client does not specify one.
	DefaultNumber = 1

	// DefaultSize is the page size used when the client does not specify one.
	DefaultSize = 20

	// MaxSize is the upper bound a client-requested size is clamped to.
	MaxSize = 100
)

// Request is a normalized pagination request.
//
// Construct it with NewRequest or Parse; the zero value is not normalized and
// would compute a negative skip.
type Request struct {
	// Page is the 1-based page number. Never less than 1 after normalization.
	Page int `json:"page" form:"page"`

	// Size is the page size. Always within [1, MaxSize] after normalization.
	Size int `json:"size" form:"size"`
}

// NewRequest returns a Request with page and size clamped to their legal
// ranges. A zero size means "unspecified" and falls back to DefaultSize; an
// explicitly negative size is an out-of-range value and clamps to 1, the same
// way an oversized value clamps to MaxSize.
func NewRequest(page, size int) Request {
	if page < 1 {
		page = DefaultNumber
	}
	switch {
	case size == 0:
		size = DefaultSize
	case size < 0:
		size = 1
	case size > MaxSize:
		size = MaxSize
	}
	return Request{Page: page, Size: size}
}

// Parse builds a Request from raw query-string values. Unparseable or absent
// values fall back to the defaults rather than producing an error.
func Parse(page, size string) Request {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = DefaultNumber
	}
	s, err := strconv.Atoi(size)
	if err != nil {
		s = DefaultSize
	}
	return NewRequest(p, s)
}

// Normalize returns a copy of r clamped to the legal ranges. It is the method
// form of NewRequest for requests bound directly from a request body.
func (r Request) Normalize() Request {
	return NewRequest(r.Page, r.Size)
}

// Skip returns the number of items preceding this page, suitable for an
// OFFSET clause. The receiver must be normalized.
func (r Request) Skip() int {
	return (r.Page - 1) * r.Size
}

// Page is one window of a paginated result set.
//
// TotalPages and the navigation flags are derived from the stored fields; they
// are computed once in New so the serialized form is self-contained.
type Page[T any] struct {
	// Items holds the window contents. Never nil; an empty window serializes
	// as [].
	Items []T `json:"items"`

	// Number is the 1-based page number this window represents.
	Number int `json:"page"`

	// Size is the window capacity, not the item count of this window.
	Size int `json:"size"`

	// TotalCount is the size of the full result set.
	TotalCount int64 `json:"totalCount"`

	// TotalPages is ceil(TotalCount / Size). Zero when the set is empty or
	// the size is not positive.
	TotalPages int `json:"totalPages"`

	// HasPreviousPage reports whether a window precedes this one.
	HasPreviousPage bool `json:"hasPreviousPage"`

	// HasNextPage reports whether a window follows this one.
	HasNextPage bool `json:"hasNextPage"`
}

// New assembles a Page from a window of items and the request that produced
// it; totalCount is the unwindowed size of the result set. The request should
// be normalized, but a raw request with a non-positive size still produces a
// well-formed page with zero TotalPages and cleared navigation flags.
func New[T any](items []T, r Request, totalCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	// A non-positive size cannot cover any items; report zero pages instead
	// of dividing by it.
	if r.Size <= 0 {
		return Page[T]{
			Items:      items,
			Number:     r.Page,
			Size:       r.Size,
			TotalCount: totalCount,
		}
	}
	totalPages := int((totalCount + int64(r.Size) - 1) / int64(r.Size))
	return Page[T]{
		Items:           items,
		Number:          r.Page,
		Size:            r.Size,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasPreviousPage: r.Page > 1,
		HasNextPage:     r.Page < totalPages,
	}
}

// Empty returns a Page with no items for the given request.
func Empty[T any](r Request) Page[T] {
	return New[T](nil, r, 0)
}
