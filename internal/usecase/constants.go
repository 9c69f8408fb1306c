package usecase

import "time"

const (
	// DefaultReportCacheTTL is how long reports of closed fiscal years are cached
	// when no TTL is configured.
	DefaultReportCacheTTL = 24 * time.Hour

	// reportCachePrefix namespaces report keys in the shared cache.
	reportCachePrefix = "report:"
)
