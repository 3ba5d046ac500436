package utils

import (
	"fmt"
	"strings"
	"time"
)

// ManifestCodePrefix starts every generated manifest code
const ManifestCodePrefix = "MNF"

// GenerateManifestCode builds a code of the form MNF-YYYYMMDD-#### using the
// UTC date of at and a random suffix in [1000, 9999]. intn must behave like
// rand.IntN. The suffix is not checked for collisions.
func GenerateManifestCode(at time.Time, intn func(n int) int) string {
	suffix := 1000 + intn(9000)
	return fmt.Sprintf("%s-%s-%04d", ManifestCodePrefix, at.UTC().Format("20060102"), suffix)
}

// IsBlank reports whether s is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
