package succinct_bit_vector

import (
	"errors"
	"fmt"
)

// Domain error kinds a caller can branch on with errors.Is. Constructors
// and query methods wrap one of these with fmt.Errorf("...: %w", ...) so
// the message stays readable while the sentinel stays comparable.
var (
	// ErrOutOfRange is returned when an index argument falls outside the
	// operation's declared domain (negative, >= size, or similar).
	ErrOutOfRange = errors.New("out of range")

	// ErrBadArgument is returned by constructors given inconsistent sizes,
	// a negative max, or a value outside [0, max].
	ErrBadArgument = errors.New("bad argument")

	// ErrUnsupported is returned by a write operation invoked on a
	// read-only view, such as the BitSet projection of a RankDirectory.
	ErrUnsupported = errors.New("unsupported")
)

func outOfRangef(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}

func badArgumentf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadArgument)
}

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUnsupported)
}

const debugInvariants = false

// bugOn panics when cond holds and debugInvariants is enabled. It guards
// internal invariants that construction is supposed to make impossible,
// not caller-facing domain errors — those return one of the Err sentinels
// above instead.
func bugOn(cond bool, format string, args ...any) {
	if debugInvariants && cond {
		panic(fmt.Sprintf("BUG: "+format, args...))
	}
}
