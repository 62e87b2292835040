// Package stub swaps package-level values out for the duration of a test.
package stub

// Replace sets *dst to val and returns a function that puts the original
// value back. Intended for test cleanups:
//
//	t.Cleanup(stub.Replace(&defaultRunner, fakeRunner))
func Replace[V any](dst *V, val V) (restore func()) {
	prev := *dst
	*dst = val
	return func() {
		*dst = prev
	}
}
