package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/matzehuels/archviz/pkg/errors"
)

// DefaultDotBinary is looked up on PATH when no binary is configured.
const DefaultDotBinary = "dot"

const graphvizInstallHint = "Graphviz 'dot' command not found. Please install Graphviz.\n" +
	"Install with: brew install graphviz (macOS) or apt-get install graphviz (Linux)"

// Graphviz renders by running the dot executable.
type Graphviz struct {
	// Binary is the dot executable name or path. Empty means [DefaultDotBinary].
	Binary string
}

func (g *Graphviz) binary() string {
	if g.Binary == "" {
		return DefaultDotBinary
	}
	return g.Binary
}

// Render runs dot -T<f> dotPath -o outPath.
func (g *Graphviz) Render(ctx context.Context, dotPath string, f Format, outPath string) error {
	bin, err := exec.LookPath(g.binary())
	if err != nil {
		return errors.Wrap(errors.ErrCodeToolNotFound, err, "%s", graphvizInstallHint)
	}

	cmd := exec.CommandContext(ctx, bin, "-T"+string(f), dotPath, "-o", outPath)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		toolErr := &errors.ToolError{Tool: "dot", ExitCode: -1, Stderr: strings.TrimSpace(errBuf.String())}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		}
		return errors.Wrap(errors.ErrCodeToolFailed, toolErr, "render %s", dotPath)
	}
	return nil
}
