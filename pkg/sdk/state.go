package sdk

import "fmt"

// State is the lifecycle position of a plugin instance.
type State uint8

const (
	StateUninitialized State = iota
	StateInitialized
	StateOpened
	StateClosed
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateOpened:
		return "opened"
	case StateClosed:
		return "closed"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Op is one host call validated by the lifecycle state machine.
type Op uint8

const (
	OpInit Op = iota
	OpOpen
	OpNextBatch
	OpClose
	OpDestroy
)

func (o Op) String() string {
	switch o {
	case OpInit:
		return "init"
	case OpOpen:
		return "open"
	case OpNextBatch:
		return "next_batch"
	case OpClose:
		return "close"
	case OpDestroy:
		return "destroy"
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Transition validates one host call against the current state and
// returns the state after the call. Destroy is legal from every live
// state and is a sink: once destroyed, every call fails with
// ErrDestroyed. A closed instance may be re-opened without a new Init;
// configuration is instance-scoped and survives Close.
func Transition(s State, op Op) (State, error) {
	if s == StateDestroyed {
		return s, fmt.Errorf("%s after destroy: %w", op, ErrDestroyed)
	}
	if op == OpDestroy {
		return StateDestroyed, nil
	}
	switch op {
	case OpInit:
		if s == StateUninitialized {
			return StateInitialized, nil
		}
	case OpOpen:
		if s == StateInitialized || s == StateClosed {
			return StateOpened, nil
		}
	case OpNextBatch:
		if s == StateOpened {
			return StateOpened, nil
		}
	case OpClose:
		if s == StateOpened {
			return StateClosed, nil
		}
	}
	return s, fmt.Errorf("%s in state %s: %w", op, s, ErrInvalidOrder)
}
