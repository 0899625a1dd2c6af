package marquee

// Owner says who holds the source of truth for a piece of interactive state.
type Owner uint8

const (
	// OwnerInternal lets the component mutate its own value.
	OwnerInternal Owner = iota
	// OwnerExternal makes the component a pure renderer of a value the
	// caller drives with State.Drive.
	OwnerExternal
)

// Binding configures a State. With OwnerInternal, Value is the initial
// value; with OwnerExternal, it is the first externally supplied value.
// OnChange fires on every transition in either mode.
type Binding[T comparable] struct {
	Owner    Owner
	Value    T
	OnChange func(T)
}

// State is a value with explicit ownership and a change notifier.
//
// Components request transitions with Set. Internally owned state applies
// them; externally owned state only notifies, leaving the owner to answer
// with Drive. The internal fallback is never touched while externally owned.
type State[T comparable] struct {
	owner    Owner
	internal T
	external T
	onChange func(T)
}

// NewState creates a State from a binding.
func NewState[T comparable](b Binding[T]) *State[T] {
	s := &State[T]{owner: b.Owner, onChange: b.OnChange}
	if b.Owner == OwnerExternal {
		s.external = b.Value
	} else {
		s.internal = b.Value
	}
	return s
}

// Owner returns who owns the value.
func (s *State[T]) Owner() Owner {
	return s.owner
}

// Get returns the effective value.
func (s *State[T]) Get() T {
	if s.owner == OwnerExternal {
		return s.external
	}
	return s.internal
}

// Internal returns the component's own fallback value, which is only
// effective under OwnerInternal.
func (s *State[T]) Internal() T {
	return s.internal
}

// Set requests a transition to v. It is a no-op when v equals the current
// value.
func (s *State[T]) Set(v T) {
	if v == s.Get() {
		return
	}
	if s.owner == OwnerInternal {
		s.internal = v
	}
	s.notify(v)
}

// Drive supplies a new externally owned value. It is ignored for internally
// owned state.
func (s *State[T]) Drive(v T) {
	if s.owner != OwnerExternal || v == s.external {
		return
	}
	s.external = v
	s.notify(v)
}

// OnChange replaces the change notifier.
func (s *State[T]) OnChange(fn func(T)) {
	s.onChange = fn
}

func (s *State[T]) notify(v T) {
	if s.onChange != nil {
		s.onChange(v)
	}
}
