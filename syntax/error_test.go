package syntax

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := Errorf(ErrDuplicateName, "named_capture", "cannot use %q again", "x")
	assert.Equal(t, `superexpressive: duplicate capture group name in named_capture: cannot use "x" again`, err.Error())
	assert.Equal(t, "superexpressive: nothing open to end", (&Error{Code: ErrNothingOpen}).Error())
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Errorf(ErrAnchorConflict, "start_of_input", "again"))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrStructural))
	assert.True(t, errors.Is(err, &Error{Code: ErrAnchorConflict}))
	assert.True(t, errors.Is(err, &Error{Code: ErrAnchorConflict, Op: "start_of_input"}))
	assert.False(t, errors.Is(err, &Error{Code: ErrAnchorConflict, Op: "end_of_input"}))
	assert.False(t, errors.Is(err, &Error{Code: ErrFlagConflict}))
}

func TestErrorCategories(t *testing.T) {
	categories := map[ErrorCode]error{
		ErrNothingOpen:             ErrStructural,
		ErrNotClosable:             ErrStructural,
		ErrAlreadyQuantified:       ErrStructural,
		ErrIncompleteSubexpression: ErrStructural,
		ErrTooDeep:                 ErrStructural,
		ErrIncomplete:              ErrStructural,
		ErrChildNotUnique:          ErrStructural,
		ErrInvalidName:             ErrName,
		ErrDuplicateName:           ErrName,
		ErrMissingGroup:            ErrName,
		ErrOpenGroup:               ErrName,
		ErrInvalidLiteral:          ErrValue,
		ErrInvalidRange:            ErrValue,
		ErrInvalidRepeat:           ErrValue,
		ErrMisplacedElement:        ErrValue,
		ErrAnchorConflict:          ErrConflict,
		ErrFlagConflict:            ErrConflict,
	}
	for code, want := range categories {
		assert.Equal(t, want, code.Category(), code.String())
	}
}
