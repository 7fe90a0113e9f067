package space

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for the space package. Callers branch with errors.Is.
var (
	// ErrNilSpace indicates a nil *Space was used where one is required.
	ErrNilSpace = errors.New("space: nil space")

	// ErrNegativeDimension indicates nparam/n_in/n_out was requested negative.
	ErrNegativeDimension = errors.New("space: negative dimension count")

	// ErrParamMismatch indicates two spaces disagree on parameter count.
	ErrParamMismatch = errors.New("space: parameter count mismatch")

	// ErrComponentMismatch indicates two spaces disagree on a component size.
	ErrComponentMismatch = errors.New("space: component size mismatch")

	// ErrSetHasInput indicates a set-only operation received n_in != 0.
	ErrSetHasInput = errors.New("space: set has non-zero input arity")

	// ErrIndexOutOfRange indicates a dimension index fell outside its component.
	ErrIndexOutOfRange = errors.New("space: index out of range")

	// ErrUnknownComponent indicates an invalid Component value was passed.
	ErrUnknownComponent = errors.New("space: unknown component")
)

// Component names one of the four coordinate groups of a Space. The
// constant numeric column offsets of spec.md §3 are computed from these.
type Component int

const (
	// Param is the shared parameter tuple; never projected or composed.
	Param Component = iota
	// In is the input tuple; zero-length for sets.
	In
	// Out is the output tuple.
	Out
	// Div is the existentially quantified div tuple (spec.md §4.3).
	Div
)

// String implements fmt.Stringer for diagnostics.
func (c Component) String() string {
	switch c {
	case Param:
		return "param"
	case In:
		return "in"
	case Out:
		return "out"
	case Div:
		return "div"
	default:
		return "unknown"
	}
}

// Space is the immutable shape descriptor shared by every basic relation
// and relation built on it: parameter count, input-tuple arity,
// output-tuple arity, and optional per-dimension names.
//
// Space carries no div count: divs are owned by each BasicRelation
// individually (spec.md §4.3) and are not part of the shared shape.
//
// Space is refcounted and immutable after Alloc; Copy bumps the refcount
// and Free decrements it. Free releases nothing itself; the backing arrays
// are left to the garbage collector. There
// is no mutex: spec.md §5 specifies the engine is single-threaded.
type Space struct {
	nparam int
	nIn    int
	nOut   int

	// names holds one name per dimension, indexed by the global column
	// order [param | in | out]; a nil entry means "unnamed". Nil overall
	// means no names have ever been set.
	names []string

	refs int32
}

// total returns nparam + n_in + n_out, the variable count excluding the
// constant column and any divs (spec.md §3).
func (s *Space) total() int {
	return s.nparam + s.nIn + s.nOut
}

// Total returns the total variable count excluding the constant column
// and divs. Safe to call on a nil Space (returns 0).
func (s *Space) Total() int {
	if s == nil {
		return 0
	}

	return s.total()
}

// NParam returns the parameter count.
func (s *Space) NParam() int {
	if s == nil {
		return 0
	}

	return s.nparam
}

// NIn returns the input-tuple arity.
func (s *Space) NIn() int {
	if s == nil {
		return 0
	}

	return s.nIn
}

// NOut returns the output-tuple arity.
func (s *Space) NOut() int {
	if s == nil {
		return 0
	}

	return s.nOut
}

// Size returns the dimension count of the requested component. Div is not
// meaningful here (it lives on BasicRelation) and returns 0.
func (s *Space) Size(c Component) int {
	if s == nil {
		return 0
	}
	switch c {
	case Param:
		return s.nparam
	case In:
		return s.nIn
	case Out:
		return s.nOut
	default:
		return 0
	}
}

// Offset returns the column offset of the requested component within a
// constraint row, counting the constant column at index 0 (spec.md §3).
func (s *Space) Offset(c Component) int {
	if s == nil {
		return 1
	}
	switch c {
	case Param:
		return 1
	case In:
		return 1 + s.nparam
	case Out:
		return 1 + s.nparam + s.nIn
	case Div:
		return 1 + s.total()
	default:
		return 1
	}
}

// refInc atomically increments the refcount and returns the same pointer;
// used by Copy.
func (s *Space) refInc() *Space {
	if s != nil {
		atomic.AddInt32(&s.refs, 1)
	}

	return s
}
