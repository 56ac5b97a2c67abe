package syntax

import (
	"errors"
	"fmt"
)

// Error categories. Every *Error belongs to exactly one of them, so callers can
// test the broad class of a failure with errors.Is.
var (
	// ErrStructural reports an operation that does not fit the current shape of
	// the tree: closing with nothing open, quantifying twice, merging an
	// incomplete expression.
	ErrStructural = errors.New("structural error")

	// ErrName reports an invalid, duplicate or unknown capture name or index.
	ErrName = errors.New("name error")

	// ErrValue reports a malformed literal payload.
	ErrValue = errors.New("value error")

	// ErrConflict reports clashing anchors or incompatible flags.
	ErrConflict = errors.New("conflict error")
)

// An ErrorCode describes a failure to build an expression.
type ErrorCode string

const (
	ErrNothingOpen             ErrorCode = "nothing open to end"
	ErrNotClosable             ErrorCode = "innermost node cannot be ended"
	ErrAlreadyQuantified       ErrorCode = "expression is already being quantified"
	ErrIncompleteSubexpression ErrorCode = "subexpression is not fully specified"
	ErrTooDeep                 ErrorCode = "expression nesting too deep"
	ErrIncomplete              ErrorCode = "expression has unclosed elements"
	ErrChildNotUnique          ErrorCode = "child to replace is not present exactly once"
	ErrInvalidName             ErrorCode = "invalid capture group name"
	ErrDuplicateName           ErrorCode = "duplicate capture group name"
	ErrMissingGroup            ErrorCode = "reference to undefined capture group"
	ErrOpenGroup               ErrorCode = "reference to capture group that is still open"
	ErrInvalidLiteral          ErrorCode = "invalid literal"
	ErrInvalidRange            ErrorCode = "invalid character range"
	ErrInvalidRepeat           ErrorCode = "invalid repeat count"
	ErrMisplacedElement        ErrorCode = "element not allowed here"
	ErrAnchorConflict          ErrorCode = "conflicting input anchors"
	ErrFlagConflict            ErrorCode = "incompatible flags"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Category returns the category sentinel the code belongs to.
func (e ErrorCode) Category() error {
	switch e {
	case ErrNothingOpen, ErrNotClosable, ErrAlreadyQuantified, ErrIncompleteSubexpression, ErrTooDeep, ErrIncomplete, ErrChildNotUnique:
		return ErrStructural
	case ErrInvalidName, ErrDuplicateName, ErrMissingGroup, ErrOpenGroup:
		return ErrName
	case ErrInvalidLiteral, ErrInvalidRange, ErrInvalidRepeat, ErrMisplacedElement:
		return ErrValue
	case ErrAnchorConflict, ErrFlagConflict:
		return ErrConflict
	}
	return ErrStructural
}

// Error describes a failed build operation.
type Error struct {
	Code   ErrorCode
	Op     string // builder operation that failed, e.g. "named_capture"
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "superexpressive: " + e.Code.String()
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is the error's category sentinel or an *Error
// carrying the same code.
func (e *Error) Is(target error) bool {
	if target == e.Code.Category() {
		return true
	}
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Code == e.Code && (other.Op == "" || other.Op == e.Op)
}

// Errorf builds an *Error with a formatted detail message.
func Errorf(code ErrorCode, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Detail: fmt.Sprintf(format, args...)}
}
