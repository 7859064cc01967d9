// Package file provides the TOML-backed ConfigStore.
//
// Settings live in ~/.wik/config.toml unless another directory is given.
// Keys are addressed in dot notation ("api.base_url") and written back as
// nested TOML tables:
//
//	[api]
//	base_url = "https://en.wikipedia.org"
//	timeout_seconds = 15
package file
