package domain

// LoadState is the observable state of a background-loaded slot.
type LoadState int

const (
	// LoadReady means no load is in flight and the value is current.
	LoadReady LoadState = iota

	// LoadLoading means a load is in flight or the slot is being written.
	LoadLoading
)

// String returns the string representation of the load state.
func (s LoadState) String() string {
	switch s {
	case LoadReady:
		return "ready"
	case LoadLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// LoadStatus is a snapshot of a slot taken by a non-blocking poll.
type LoadStatus[T any] struct {
	// State is Loading or Ready.
	State LoadState

	// Value is a copy of the last completed result. Only meaningful when
	// State is LoadReady.
	Value T

	// Loaded reports whether any load has completed successfully.
	Loaded bool

	// Err is the error of the most recent failed load, cleared by the next
	// successful one. A failed load never replaces Value.
	Err error
}

// Loading reports whether the slot is busy.
func (s LoadStatus[T]) Loading() bool {
	return s.State == LoadLoading
}
