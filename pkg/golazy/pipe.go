package golazy

// Closure is a partially-applied adaptor: the bound-argument form that lets
// a pipeline read left-to-right instead of nesting calls inside-out. The
// single-input adaptors Filter, Map, Take, Drop, TakeWhile and DropWhile
// have matching ...Closure constructors (FilterClosure, MapClosure,
// TakeClosure, DropClosure, TakeWhileClosure, DropWhileClosure) that return
// a Closure usable with Pipe or Pipeline.Pipe; the other adaptors have no
// ...Closure constructor.
//
// This is the Go-idiomatic substitute for the source specification's
// `iterable | adaptor(args...)` operator: Go has no operator overloading,
// so the pipe becomes an explicit method call, per the pipe composition
// note in SPEC_FULL.md §5.16.
type Closure[T, U any] func(View[T]) View[U]

// Pipe applies c to v. Pipe(v, c) is always exactly equivalent to c(v); it
// exists purely so a pipeline reads in application order when chained:
// golazy.Pipe(golazy.Pipe(src, f1), f2) mirrors `src | f1 | f2`.
func Pipe[T, U any](v View[T], c Closure[T, U]) View[U] {
	return c(v)
}

// Pipeline wraps a View so adaptors can be chained with method calls
// instead of nested function application. It carries no behavior of its
// own beyond forwarding to Pipe; V is exported so a Pipeline can be built
// as a struct literal (golazy.Pipeline[int]{V: src}) or via NewPipeline.
type Pipeline[T any] struct {
	V View[T]
}

// NewPipeline wraps v in a Pipeline.
func NewPipeline[T any](v View[T]) Pipeline[T] {
	return Pipeline[T]{V: v}
}

// Iter satisfies View[T] by delegating to the wrapped view, so a Pipeline
// can be passed anywhere a View is expected without unwrapping it first.
func (p Pipeline[T]) Iter() Iterator[T] {
	return p.V.Iter()
}

// PipeP applies c to the wrapped view and rewraps the result, enabling
// left-to-right chains:
//
//	golazy.PipeP(golazy.PipeP(golazy.NewPipeline(src),
//	    golazy.FilterClosure(isEven)),
//	    golazy.MapClosure(triple))
//
// Go methods cannot introduce a type parameter beyond their receiver's, so
// Pipeline has no true fluent `.Pipe` method when the element type changes
// (T -> U); PipeP is the free-function form that keeps the Pipeline wrapper
// around a changed element type. Same-type chains (T -> T, the common case
// for Filter/Take/Drop/...) can use the Pipeline.Pipe method below.
func PipeP[T, U any](p Pipeline[T], c Closure[T, U]) Pipeline[U] {
	return Pipeline[U]{V: Pipe(p.V, c)}
}

// Pipe applies a same-type closure (T -> T) to the wrapped view, which
// covers Filter/Take/Drop/TakeWhile/DropWhile/Sort-shaped adaptors and is
// expressible as a true method since the element type does not change.
func (p Pipeline[T]) Pipe(c Closure[T, T]) Pipeline[T] {
	return Pipeline[T]{V: Pipe(p.V, c)}
}
