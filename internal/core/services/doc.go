// Package services holds the core of wik: the session-scoped RequestCache,
// the FetchService that searches and loads articles through it, and the
// Slot that runs one fetch at a time off the UI goroutine.
//
// SettingsService and CacheService back the operator commands.
package services
