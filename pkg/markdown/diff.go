package markdown

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const maskedTimestamp = TimestampPrefix + "<timestamp>"

// MaskTimestamp replaces the generation timestamp so two renderings of the
// same config compare equal.
func MaskTimestamp(doc string) string {
	lines := strings.SplitAfter(doc, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, TimestampPrefix) {
			nl := ""
			if strings.HasSuffix(line, "\n") {
				nl = "\n"
			}
			lines[i] = maskedTimestamp + nl
		}
	}
	return strings.Join(lines, "")
}

// Diff returns a unified diff from existing to generated, ignoring the
// timestamp line. An empty string means the documents match.
func Diff(existing, generated, fromFile, toFile string) (string, error) {
	a := MaskTimestamp(existing)
	b := MaskTimestamp(generated)
	if a == b {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	})
}
