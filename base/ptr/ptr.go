// Package ptr builds pointers to literals, mostly for optional patch fields.
package ptr

// String returns a pointer to the given string
func String(value string) *string {
	return &value
}

// Int returns a pointer to the given int
func Int(value int) *int {
	return &value
}

// Int32 returns a pointer to the given int32
func Int32(value int32) *int32 {
	return &value
}

// Bool returns a pointer to the given bool
func Bool(value bool) *bool {
	return &value
}
