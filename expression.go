// Package superexpressive builds regular expressions from chained calls.
//
// Every call appends one element to an abstract syntax tree; the finished tree
// renders to a pattern string or compiles to an executable Regex. The builder
// never matches text itself: execution is delegated to an engine (by default
// github.com/dlclark/regexp2, see package engine).
//
// Basic usage:
//
//	se := superexpressive.New().
//	    StartOfInput().
//	    AtLeast(3).Digit().
//	    Capture().
//	        Literal("-").
//	        Word().
//	    End().
//	    EndOfInput()
//
//	pattern, err := se.Render()
//	// pattern == `^\d{3,}(\-\w)$`
//
// Expressions are immutable values. Each call returns a new Expression and
// leaves its receiver untouched, so an intermediate expression can be stored
// and extended in several directions, and expressions may be shared between
// goroutines freely.
//
// Errors are sticky: the first invalid call returns an Expression carrying the
// error, every later call on it returns it unchanged, and Err, Render and
// Compile report the error. The expression the failing call was made on is not
// affected and can be extended with corrected input.
//
// Containers opened with Capture, NamedCapture, Group, AnyOf, AssertAhead and
// AssertNotAhead must be closed with End. Quantifiers apply to the next
// element and close themselves once it is added.
package superexpressive

import (
	"github.com/sirupsen/logrus"

	"github.com/coregx/superexpressive/syntax"
)

// Expression is the build state of a regular expression.
//
// The zero value is an empty expression with the default configuration.
type Expression struct {
	cfg *Config

	// root is the top-level container. stack holds the open nodes below it,
	// innermost last; its entries are the exact nodes reachable from root.
	root  *syntax.Node
	stack []*syntax.Node

	names    map[string]struct{} // copy-on-write
	captures int
	flags    syntax.Flags
	flagsSet bool

	err error
}

var defaultConfig = DefaultConfig()

// New returns an empty expression with the default configuration.
func New() Expression {
	return NewWithConfig(defaultConfig)
}

// NewWithConfig returns an empty expression built under config.
// An invalid config yields an expression whose Err reports it.
func NewWithConfig(config Config) Expression {
	if config.Logger == nil {
		config.Logger = defaultConfig.Logger
	}
	e := Expression{
		cfg:      &config,
		root:     syntax.New(syntax.OpRoot),
		flags:    syntax.DefaultFlags,
		flagsSet: true,
	}
	if err := config.Validate(); err != nil {
		e.err = err
	}
	return e
}

// init makes the zero value usable.
func (e Expression) init() Expression {
	if e.cfg == nil {
		e.cfg = &defaultConfig
	}
	if e.root == nil {
		e.root = syntax.New(syntax.OpRoot)
	}
	if !e.flagsSet {
		e.flags = syntax.DefaultFlags
		e.flagsSet = true
	}
	return e
}

// Err returns the error of the first invalid call, if any.
func (e Expression) Err() error {
	return e.err
}

// Complete reports whether every opened container has been closed.
func (e Expression) Complete() bool {
	return e.err == nil && len(e.stack) == 0
}

// Flags returns the flag set the expression will be compiled with.
func (e Expression) Flags() syntax.Flags {
	return e.init().flags
}

// TotalCaptureGroups returns the number of capture groups, named ones
// included, created so far.
func (e Expression) TotalCaptureGroups() int {
	return e.captures
}

// NamedGroups returns the names of the named capture groups in no particular
// order.
func (e Expression) NamedGroups() []string {
	names := make([]string, 0, len(e.names))
	for n := range e.names {
		names = append(names, n)
	}
	return names
}

// HasNamedGroup reports whether a named capture group called name exists.
func (e Expression) HasNamedGroup(name string) bool {
	_, ok := e.names[name]
	return ok
}

// Root returns the root of the tree. The tree must not be modified.
func (e Expression) Root() *syntax.Node {
	return e.init().root
}

// Render returns the pattern in Python re syntax. It fails if the expression
// carries an error or still has open containers.
func (e Expression) Render() (string, error) {
	return e.Pattern(syntax.Python)
}

// Pattern returns the pattern rendered in dialect d.
func (e Expression) Pattern(d syntax.Dialect) (string, error) {
	e = e.init()
	if e.err != nil {
		return "", e.err
	}
	if len(e.stack) != 0 {
		top := e.stack[len(e.stack)-1]
		return "", syntax.Errorf(syntax.ErrIncomplete, "render",
			"%d element(s) still open, innermost is %s (try adding an End call)", len(e.stack), top.Op)
	}
	return syntax.Render(e.root, d, e.flags), nil
}

// String returns the rendered pattern, or the empty string when the
// expression cannot be rendered; use Render to see why.
func (e Expression) String() string {
	s, err := e.Render()
	if err != nil {
		return ""
	}
	return s
}

func (e Expression) log() logrus.FieldLogger {
	return e.cfg.Logger
}

func (e Expression) fail(err error) Expression {
	e.err = err
	e.log().WithError(err).Debug("expression failed")
	return e
}

// current returns the innermost open node.
func (e Expression) current() *syntax.Node {
	if len(e.stack) == 0 {
		return e.root
	}
	return e.stack[len(e.stack)-1]
}

// push appends el to the innermost open node and threads the change up to a
// new root. Containers and quantifiers become the new innermost open node;
// after a leaf every quantifier completed by it is closed.
func (e Expression) push(op string, el *syntax.Node) Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if len(e.stack)+2 > e.cfg.MaxDepth {
		return e.fail(syntax.Errorf(syntax.ErrTooDeep, op, "depth limit %d reached", e.cfg.MaxDepth))
	}

	current := e.current()
	updated, err := current.AddChild(el)
	if err != nil {
		return e.fail(err)
	}

	stack := make([]*syntax.Node, len(e.stack), len(e.stack)+1)
	root := updated
	if n := len(e.stack); n > 0 {
		stack[n-1] = updated
		previous, replaced := current, updated
		for i := n - 2; i >= 0; i-- {
			r, err := e.stack[i].ReplaceChild(previous, replaced)
			if err != nil {
				return e.fail(err)
			}
			stack[i] = r
			previous, replaced = e.stack[i], r
		}
		root, err = e.root.ReplaceChild(previous, replaced)
		if err != nil {
			return e.fail(err)
		}
	}

	e.root = root
	if el.Op.IsLeaf() {
		e.stack = closeCompleted(stack)
	} else {
		e.stack = append(stack, el)
	}
	e.log().WithFields(logrus.Fields{"op": op, "depth": len(e.stack)}).Debug("push")
	return e
}

// End closes the innermost open container. It fails when nothing is open or
// when the innermost open node is a quantifier still waiting for its element.
func (e Expression) End() Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if len(e.stack) == 0 {
		return e.fail(syntax.Errorf(syntax.ErrNothingOpen, "end", "cannot call end while building the root expression"))
	}
	top := e.stack[len(e.stack)-1]
	if !top.Op.IsContainer() {
		return e.fail(syntax.Errorf(syntax.ErrNotClosable, "end", "cannot call end while %s is unset", top.Op))
	}
	e.stack = closeCompleted(e.stack[:len(e.stack)-1:len(e.stack)-1])
	e.log().WithFields(logrus.Fields{"op": top.Op.String(), "depth": len(e.stack)}).Debug("end")
	return e
}

// closeCompleted pops the quantifiers at the top of stack whose element is
// set. Containers are only ever closed by End.
func closeCompleted(stack []*syntax.Node) []*syntax.Node {
	for len(stack) > 0 && stack[len(stack)-1].Op.IsQuantifier() && stack[len(stack)-1].Complete() {
		stack = stack[:len(stack)-1]
	}
	return stack
}

// withName returns a copy of the name set with name added.
func (e Expression) withName(name string) map[string]struct{} {
	names := make(map[string]struct{}, len(e.names)+1)
	for n := range e.names {
		names[n] = struct{}{}
	}
	names[name] = struct{}{}
	return names
}

// leaf pushes the result of a leaf constructor.
func (e Expression) leaf(op string, n *syntax.Node, err error) Expression {
	if e.err != nil {
		return e
	}
	if err != nil {
		return e.init().fail(err)
	}
	return e.push(op, n)
}
