package sheet

import "fmt"

// Op identifies a long-running collaborator call guarded by a busy flag.
type Op int

const (
	OpPalette Op = iota
	OpGradient
	OpExport

	opCount
)

func (o Op) String() string {
	switch o {
	case OpPalette:
		return "palette"
	case OpGradient:
		return "gradient"
	case OpExport:
		return "export"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

func (o Op) valid() bool {
	return o >= 0 && o < opCount
}

// Busy reports whether op is in flight.
func (s State) Busy(op Op) bool {
	return op.valid() && s.busy[op]
}

// Begin raises the busy flag of op. Flags are independent of each other.
func (s State) Begin(op Op) (State, error) {
	if !op.valid() {
		return s, fmt.Errorf("%s: %w", op, ErrUnknownOperation)
	}
	if s.busy[op] {
		return s, fmt.Errorf("%s: %w", op, ErrBusy)
	}
	s.busy[op] = true
	return s, nil
}

// Finish clears the busy flag of op. Clearing an idle flag is a no-op.
func (s State) Finish(op Op) (State, error) {
	if !op.valid() {
		return s, fmt.Errorf("%s: %w", op, ErrUnknownOperation)
	}
	s.busy[op] = false
	return s, nil
}
