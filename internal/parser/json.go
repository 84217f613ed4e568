package parser

import "strings"

// outermostSlice returns the substring of raw spanning the first occurrence
// of open through the last occurrence of close. Models often wrap JSON in
// prose or code fences; slicing the outermost bracket pair recovers the
// payload without caring about the wrapper.
func outermostSlice(raw string, open, close byte) (string, bool) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
