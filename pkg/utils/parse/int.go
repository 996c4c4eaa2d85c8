// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Provides safe parsing that reports failure instead of panicking

package parse

import "strconv"

// Int64 parses a base-10 integer from a string, reporting whether parsing succeeded
func Int64(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}
