// Package domain defines domain-level errors for the catalog feature.
package domain

import "errors"

var (
	// ErrUpstream indicates the metadata provider timed out, answered with a
	// non-2xx status or returned a payload that could not be decoded. It is
	// mapped to 502 at the HTTP boundary and is never retried automatically.
	ErrUpstream = errors.New("failed to fetch data from catalog provider")

	// ErrEmptyQuery indicates a search was attempted without a query string.
	ErrEmptyQuery = errors.New("Search query is required")
)
