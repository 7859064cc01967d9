package domain

// CacheEntry pairs a request key with the content file holding its payload.
type CacheEntry struct {
	// Key is the canonical string form of the logical request,
	// e.g. the fully rendered API URL.
	Key string `json:"key"`

	// FileName is the content hash of Key. It is a pure function of Key.
	FileName string `json:"file_name"`
}
