// Package strings provides string slice utilities.
package strings

// Dedupe removes repeats from a slice, keeping the first occurrence of each
// value. Values are compared exactly: no trimming or case folding, and the
// empty string is kept like any other value, since country labels are
// matched byte for byte.
//
// Example:
//
//	Dedupe([]string{"Japan", "", "Chad", "Japan", " Japan", ""})
//	// Returns: []string{"Japan", "", "Chad", " Japan"}
func Dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}
