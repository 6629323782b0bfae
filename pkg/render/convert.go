package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/matzehuels/archviz/pkg/errors"
)

const rsvgInstallHint = "pdf export requires librsvg. Install with:\n" +
	"  macOS:  brew install librsvg\n" +
	"  Linux:  apt install librsvg2-bin"

// ToPDF converts SVG bytes to PDF using rsvg-convert.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	bin, err := exec.LookPath("rsvg-convert")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeToolNotFound, err, "%s", rsvgInstallHint)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		toolErr := &errors.ToolError{Tool: "rsvg-convert", ExitCode: -1, Stderr: strings.TrimSpace(errBuf.String())}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		}
		return nil, errors.Wrap(errors.ErrCodeToolFailed, toolErr, "convert to %s", format)
	}
	return out.Bytes(), nil
}
