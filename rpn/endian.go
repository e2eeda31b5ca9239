package rpn

const maxEndianWidth = 8

// swapLow reverses the first width bytes of the little-endian
// representation le, leaving the higher-order bytes untouched.
// A width of 1 changes nothing.
func swapLow(le []byte, width int) {
	reverse(le[0:width])
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
