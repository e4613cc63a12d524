package domain

import "github.com/cloudlagoon/lagoon/lib/types"

// CacheStats is a point in time snapshot of the cache footprint.
type CacheStats struct {
	Files int
	Bytes types.Size
}
