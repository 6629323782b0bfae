package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/archviz/pkg/errors"
)

// Builtin renders in-process with go-graphviz.
type Builtin struct{}

// Render lays out the DOT file at dotPath and writes outPath.
func (b *Builtin) Render(ctx context.Context, dotPath string, f Format, outPath string) error {
	dot, err := os.ReadFile(dotPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", dotPath)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", dotPath)
	}

	data, err := RenderBytes(ctx, dot, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", outPath)
	}
	return nil
}

// RenderBytes renders DOT source to f. PDF goes through SVG and rsvg-convert.
func RenderBytes(ctx context.Context, dot []byte, f Format) ([]byte, error) {
	switch f {
	case FormatSVG:
		return layout(ctx, dot, graphviz.SVG)
	case FormatPNG:
		return layout(ctx, dot, graphviz.PNG)
	case FormatPDF:
		svg, err := layout(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return ToPDF(ctx, svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
	}
}

func layout(ctx context.Context, dot []byte, f graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, f, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeToolFailed, err, "render %s", f)
	}
	return buf.Bytes(), nil
}
