package drink

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrInvalidDrink matches every *ValidationError via errors.Is.
var ErrInvalidDrink = errors.New("invalid drink")

// ValidationError reports a violated variant invariant. Construction never
// returns a drink together with a ValidationError.
type ValidationError struct {
	Kind   Kind
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is makes errors.Is(err, ErrInvalidDrink) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDrink
}

func invalid(kind Kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
