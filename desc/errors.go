package desc

import "fmt"

// ErrorKind discriminates the ways a format description can be rejected.
type ErrorKind uint8

const (
	ErrMissingComponentName ErrorKind = iota
	ErrInvalidComponent
	ErrInvalidModifierKey
	ErrInvalidModifierValue
	ErrExpectedModifierValue
	ErrMissingRequiredModifier
	ErrUnclosedBracket
	ErrExpectedOpeningBracket
	ErrExpectedWhitespaceAfterOptional
	ErrExpectedWhitespaceAfterFirst
	ErrInvalidEscapeSequence
	ErrUnexpectedToken
	ErrInvalidVersion
	ErrNestingTooDeep
)

var errorKindNames = [...]string{
	ErrMissingComponentName:            "missing component name",
	ErrInvalidComponent:                "invalid component",
	ErrInvalidModifierKey:              "invalid modifier key",
	ErrInvalidModifierValue:            "invalid modifier value",
	ErrExpectedModifierValue:           "expected modifier value",
	ErrMissingRequiredModifier:         "missing required modifier",
	ErrUnclosedBracket:                 "unclosed bracket",
	ErrExpectedOpeningBracket:          "expected opening bracket",
	ErrExpectedWhitespaceAfterOptional: "expected whitespace after `optional`",
	ErrExpectedWhitespaceAfterFirst:    "expected whitespace after `first`",
	ErrInvalidEscapeSequence:           "invalid escape sequence",
	ErrUnexpectedToken:                 "unexpected token",
	ErrInvalidVersion:                  "invalid format description version",
	ErrNestingTooDeep:                  "nesting too deep",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "unknown error"
}

// InvalidFormatDescription reports the first problem found while compiling a
// description. Start and End delimit the offending byte span (End exclusive);
// Token is the offending text where one exists.
type InvalidFormatDescription struct {
	Kind  ErrorKind
	Start int
	End   int
	Token string
}

func (e *InvalidFormatDescription) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s %q at byte %d", e.Kind, e.Token, e.Start)
	}
	return fmt.Sprintf("%s at byte %d", e.Kind, e.Start)
}

func descErr(kind ErrorKind, start, end int, token string) *InvalidFormatDescription {
	return &InvalidFormatDescription{Kind: kind, Start: start, End: end, Token: token}
}
