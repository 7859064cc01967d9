package domain

import "errors"

// Domain errors represent business logic failures.
// Adapters wrap these so callers can match with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Fetch Errors.

	// ErrTransport indicates the network call failed: unreachable host,
	// non-success status or timeout.
	ErrTransport = errors.New("transport error")

	// ErrDeserialization indicates a response body did not match the
	// expected shape.
	ErrDeserialization = errors.New("deserialization error")

	// ErrCacheIO indicates a filesystem failure in the content store.
	// A cache write failure never fails the fetch that triggered it.
	ErrCacheIO = errors.New("cache io error")

	// ErrSlotBusy indicates a load was requested while another load for
	// the same slot is still in flight.
	ErrSlotBusy = errors.New("load already in flight")
)
