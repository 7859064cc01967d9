package domain

import "time"

const unknownDescription = "Unknown"

// CacheBackend selects where cached payloads are persisted.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendDisk stores payloads as JSON files under the cache root.
	CacheBackendDisk CacheBackend = "disk"

	// CacheBackendMemory keeps payloads in process memory.
	CacheBackendMemory CacheBackend = "memory"

	// CacheBackendSQLite stores payloads as rows in a database under the
	// cache root.
	CacheBackendSQLite CacheBackend = "sqlite"
)

// IsValid returns true if the cache backend is recognised.
func (b CacheBackend) IsValid() bool {
	switch b {
	case CacheBackendDisk, CacheBackendMemory, CacheBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b CacheBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b CacheBackend) Description() string {
	switch b {
	case CacheBackendDisk:
		return "Disk (session directory under the cache root)"
	case CacheBackendMemory:
		return "Memory (discarded on exit)"
	case CacheBackendSQLite:
		return "SQLite (single database file under the cache root)"
	default:
		return unknownDescription
	}
}

// AllCacheBackends returns all available cache backends.
func AllCacheBackends() []CacheBackend {
	return []CacheBackend{
		CacheBackendDisk,
		CacheBackendMemory,
		CacheBackendSQLite,
	}
}

// APISettings holds encyclopedia API configuration.
type APISettings struct {
	// BaseURL is the scheme and host of the MediaWiki installation.
	BaseURL string

	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int

	// RequestsPerSecond is the client-side politeness limit.
	RequestsPerSecond float64

	// UserAgent is sent with every request.
	UserAgent string
}

// Timeout returns the request timeout as a duration.
func (a APISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// Limit is the maximum number of results requested.
	Limit int
}

// CacheSettings holds cache configuration.
type CacheSettings struct {
	// Root is the directory holding one subdirectory per session.
	// Empty means the default location.
	Root string

	// Backend selects disk or memory persistence.
	Backend CacheBackend
}

// ArticleSettings holds article pruning configuration.
type ArticleSettings struct {
	// BoilerplateTitles are headings that start the pruned tail themselves.
	BoilerplateTitles []string

	// TrailerTitles are headings after which every later heading starts the
	// pruned tail.
	TrailerTitles []string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// API holds encyclopedia API settings.
	API APISettings

	// Search holds search behaviour settings.
	Search SearchSettings

	// Cache holds cache settings.
	Cache CacheSettings

	// Article holds article pruning settings.
	Article ArticleSettings
}

// Default values for AppSettings.
const (
	DefaultBaseURL           = "https://en.wikipedia.org"
	DefaultTimeoutSeconds    = 15
	DefaultRequestsPerSecond = 5
	DefaultSearchLimit       = 25
)

// DefaultBoilerplateTitles returns the headings pruned along with everything after them.
func DefaultBoilerplateTitles() []string {
	return []string{"See Also", "Notes", "References"}
}

// DefaultTrailerTitles returns the headings that end the article body.
func DefaultTrailerTitles() []string {
	return []string{"See also", "External links"}
}

// DefaultAppSettings returns settings with sensible defaults.
// Cache.Root is left empty and resolved by the storage adapter.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:           DefaultBaseURL,
			TimeoutSeconds:    DefaultTimeoutSeconds,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Search: SearchSettings{
			Limit: DefaultSearchLimit,
		},
		Cache: CacheSettings{
			Backend: CacheBackendDisk,
		},
		Article: ArticleSettings{
			BoilerplateTitles: DefaultBoilerplateTitles(),
			TrailerTitles:     DefaultTrailerTitles(),
		},
	}
}
