package escape

import (
	"errors"
	"fmt"
)

// ErrInvalidCodepoint is matched by every *InvalidCodepointError.
var ErrInvalidCodepoint = errors.New("invalid codepoint")

// InvalidCodepointError reports a well-formed token whose value is not a
// Unicode scalar value, such as an unpaired surrogate.
type InvalidCodepointError struct {
	Token  string // token text as it appeared in the input
	Offset int    // byte offset of the token in the input
	Value  rune
}

func (e *InvalidCodepointError) Error() string {
	return fmt.Sprintf("invalid codepoint U+%04X in token %s at offset %d", e.Value, e.Token, e.Offset)
}

func (e *InvalidCodepointError) Is(target error) bool {
	return target == ErrInvalidCodepoint
}
