// Package fileutil generates descriptive, timestamped output filenames so
// exported plans from different settings never collide.
package fileutil

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// Timestamped builds "<prefix>_<settings>_<YYYYMMDD_HHMMSS>.<ext>". The
// settings string is sanitized to filename-safe characters.
func Timestamped(prefix string, settings []string, ext string) string {
	stamp := nowFunc().Format("20060102_150405")
	parts := []string{prefix}
	if s := sanitize(strings.Join(settings, "_")); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, stamp)
	return fmt.Sprintf("%s.%s", strings.Join(parts, "_"), ext)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), "_-")
}
