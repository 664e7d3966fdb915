//go:build !linux

package membuf

// allocLarge falls back to the heap on platforms without the anonymous
// mapping path.
func allocLarge(n int) ([]byte, func([]byte), error) {
	return make([]byte, n), nil, nil
}
