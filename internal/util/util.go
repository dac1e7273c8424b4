package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// NilIfBlank returns nil when s is nil or holds only whitespace, otherwise a
// pointer to the trimmed value. Optional text is never stored as "".
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}

	return NullableText(*s)
}

// NullableText returns nil for a blank string, otherwise a pointer to the trimmed value.
func NullableText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// ParseBytes parses sizes such as "512", "100KB" or "5MB" using 1024 multiples.
func ParseBytes(size string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(size))
	if s == "" {
		return 0, errors.New("empty size")
	}

	split := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if split == 0 {
		return 0, errors.Errorf("invalid size %q", size)
	}
	if split < 0 {
		split = len(s)
	}

	n, err := strconv.ParseInt(s[:split], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", size)
	}

	var multiplier int64
	switch strings.TrimSpace(s[split:]) {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1 << 10
	case "M", "MB":
		multiplier = 1 << 20
	case "G", "GB":
		multiplier = 1 << 30
	default:
		return 0, errors.Errorf("invalid size unit in %q", size)
	}

	return n * multiplier, nil
}
