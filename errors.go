package superexpressive

import "github.com/coregx/superexpressive/syntax"

// Error categories, see syntax.Error for the individual codes.
//
//	se := superexpressive.New().End()
//	if errors.Is(se.Err(), superexpressive.ErrStructural) {
//	    // nothing was open
//	}
var (
	ErrStructural = syntax.ErrStructural
	ErrName       = syntax.ErrName
	ErrValue      = syntax.ErrValue
	ErrConflict   = syntax.ErrConflict
)
