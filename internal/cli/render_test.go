package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/render"
)

// stubRenderer returns err from Render, or writes "ok" to the output.
type stubRenderer struct {
	err func(ctx context.Context) error
}

func (s stubRenderer) Render(ctx context.Context, _ string, _ render.Format, outPath string) error {
	if s.err != nil {
		return s.err(ctx)
	}
	return os.WriteFile(outPath, []byte("ok"), 0o644)
}

func TestRenderDOT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "m.svg")

	got, err := renderDOT(context.Background(), stubRenderer{}, "m.dot", render.FormatSVG, out)
	if err != nil {
		t.Fatalf("renderDOT() error: %v", err)
	}
	if got != out {
		t.Errorf("renderDOT() = %q, want %q", got, out)
	}
}

func TestRenderDOTFailure(t *testing.T) {
	failed := errors.New(errors.ErrCodeToolFailed, "dot exited with status 1")
	r := stubRenderer{err: func(context.Context) error { return failed }}

	_, err := renderDOT(context.Background(), r, "m.dot", render.FormatPNG, "m.png")
	if !errors.Is(err, errors.ErrCodeToolFailed) {
		t.Errorf("renderDOT() error = %v, want %s", err, errors.ErrCodeToolFailed)
	}
}

func TestRenderDOTInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := stubRenderer{err: func(ctx context.Context) error {
		cancel()
		return errors.Wrap(errors.ErrCodeToolFailed, ctx.Err(), "render m.dot")
	}}

	_, err := renderDOT(ctx, r, "m.dot", render.FormatPNG, "m.png")
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("renderDOT() error = %v, want context.Canceled", err)
	}
	if errors.Is(err, errors.ErrCodeToolFailed) {
		t.Error("an interrupted render should not be reported as a tool failure")
	}
}

func TestNewRenderer(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Settings.DotPath = "/opt/graphviz/bin/dot"

	r, err := c.newRenderer("dot")
	if err != nil {
		t.Fatalf("newRenderer() error: %v", err)
	}
	g, ok := r.(*render.Graphviz)
	if !ok || g.Binary != "/opt/graphviz/bin/dot" {
		t.Errorf("newRenderer(dot) = %#v, want Graphviz using the configured binary", r)
	}

	if _, err := c.newRenderer("circo"); !errors.Is(err, errors.ErrCodeInvalidEngine) {
		t.Errorf("newRenderer(circo) error = %v, want %s", err, errors.ErrCodeInvalidEngine)
	}
}
