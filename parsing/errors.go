package parsing

import (
	"errors"
	"fmt"

	"github.com/chazu/tempo/desc"
)

// errNoMatch is the internal signal that a matcher did not fit the input at
// the cursor. It never escapes the package; Parse translates it into a
// positioned error.
var errNoMatch = errors.New("no match")

// InvalidLiteralError reports input that diverges from a literal item.
type InvalidLiteralError struct {
	Offset int
}

func (e InvalidLiteralError) Error() string {
	return fmt.Sprintf("a character literal was not valid at byte %d", e.Offset)
}

// InvalidComponentError reports input a component could not match.
type InvalidComponentError struct {
	Kind   desc.Kind
	Offset int
}

func (e InvalidComponentError) Error() string {
	return fmt.Sprintf("the %s component could not be parsed at byte %d", e.Kind, e.Offset)
}

// TrailingInputError reports unconsumed input past an end component that
// prohibits it.
type TrailingInputError struct {
	Offset int
}

func (e TrailingInputError) Error() string {
	return fmt.Sprintf("unexpected trailing input at byte %d", e.Offset)
}
