package fp7

// Block is a tuple of seven lanes, one per extension coefficient.
// Callers that assemble messages lane by lane work in Block[uint32] and
// lift the finished block to an E7 in one step.
type Block[T any] [7]T

// FromFn builds a block lane by lane.
func FromFn[T any](fn func(i int) T) Block[T] {
	var b Block[T]
	for i := range b {
		b[i] = fn(i)
	}
	return b
}

// Map applies fn to every lane of b.
func Map[T, U any](b Block[T], fn func(T) U) Block[U] {
	var r Block[U]
	for i := range b {
		r[i] = fn(b[i])
	}
	return r
}
