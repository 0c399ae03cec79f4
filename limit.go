package neodb

import "iter"

// Limit caps an iterator at n values. A non-positive n means no limit
// and returns seq unchanged; a limit larger than the stream is harmless.
//
// Stopping at the limit also stops the underlying producer, so a limited
// query never scans further than it has to.
func Limit[V any](seq iter.Seq[V], n int) iter.Seq[V] {
	if n <= 0 {
		return seq
	}
	return func(yield func(V) bool) {
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}
