package analytics

import "errors"

var (
	ErrInvalidAssemblyID = errors.New("analytics: assembly id is required")
	ErrFetchFailed       = errors.New("analytics: fetching report inputs failed")
)
