package scan

// Distance counts positions where a and b differ, giving up once the count
// exceeds limit (the result is then limit+1). A negative limit disables the
// cut-off. Inputs must have equal length.
func Distance(a, b []byte, limit int) int {
	if len(a) != len(b) {
		panic("Distance: length mismatch")
	}
	mm := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			mm++
			if limit >= 0 && mm > limit {
				return mm
			}
		}
	}
	return mm
}
