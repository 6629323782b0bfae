package render

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/archviz/pkg/errors"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{FormatPNG, FormatSVG, FormatPDF}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want png, svg or pdf)", s)
}

// OutputPath replaces the extension of dotPath with the format's.
func OutputPath(dotPath string, f Format) string {
	return strings.TrimSuffix(dotPath, filepath.Ext(dotPath)) + "." + string(f)
}
