// Package file provides the disk-backed ContentStore.
//
// Layout:
//
//	<root>/<session-id>/<content-hash>
//
// Each file holds one JSON-encoded payload. The default root is
// ~/.cache/wik/caches.
package file
