package render

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/archviz/pkg/arch"
	"github.com/matzehuels/archviz/pkg/diagram"
	"github.com/matzehuels/archviz/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"SVG", FormatSVG, false},
		{" pdf ", FormatPDF, false},
		{"jpg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "out/model.png", OutputPath("out/model.dot", FormatPNG))
	assert.Equal(t, "model.svg", OutputPath("model", FormatSVG))
	assert.Equal(t, "a.b/model.pdf", OutputPath("a.b/model.dot", FormatPDF))
}

func TestNew(t *testing.T) {
	r, err := New("", "")
	require.NoError(t, err)
	assert.IsType(t, &Graphviz{}, r)

	r, err = New("dot", "/opt/graphviz/bin/dot")
	require.NoError(t, err)
	assert.Equal(t, "/opt/graphviz/bin/dot", r.(*Graphviz).Binary)

	r, err = New("Builtin", "")
	require.NoError(t, err)
	assert.IsType(t, &Builtin{}, r)

	_, err = New("neato", "")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidEngine))
}

// fakeDot writes an executable shell script standing in for dot.
func fakeDot(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "dot")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestGraphvizRender(t *testing.T) {
	// $1=-T<fmt> $2=<dot> $3=-o $4=<out>
	bin := fakeDot(t, `printf '%s %s' "$1" "$2" > "$4"`)
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "m.dot")
	outPath := OutputPath(dotPath, FormatSVG)

	g := &Graphviz{Binary: bin}
	require.NoError(t, g.Render(context.Background(), dotPath, FormatSVG, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "-Tsvg "+dotPath, string(data))
}

func TestGraphvizRenderFailure(t *testing.T) {
	bin := fakeDot(t, `echo "Error: syntax error in line 3 near '->'" >&2; exit 2`)
	g := &Graphviz{Binary: bin}

	err := g.Render(context.Background(), "bad.dot", FormatPNG, filepath.Join(t.TempDir(), "bad.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeToolFailed))

	var toolErr *errors.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 2, toolErr.ExitCode)
	assert.Equal(t, "Error: syntax error in line 3 near '->'", toolErr.Stderr)
}

func TestGraphvizRenderMissingBinary(t *testing.T) {
	g := &Graphviz{Binary: filepath.Join(t.TempDir(), "no-such-dot")}

	err := g.Render(context.Background(), "m.dot", FormatPNG, "m.png")
	assert.True(t, errors.Is(err, errors.ErrCodeToolNotFound))
	assert.Contains(t, err.Error(), "brew install graphviz")
	assert.Contains(t, err.Error(), "apt-get install graphviz")
}

const tinyDOT = `digraph ModelArchitecture {
  rankdir=TB;
  stage_0 [label="Input", fillcolor=lightyellow];
  stage_0_block_0 [label="Embedding", fillcolor=lightblue];
  stage_0 -> stage_0_block_0;
}
`

func TestBuiltinRenderSVG(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "m.dot")
	require.NoError(t, os.WriteFile(dotPath, []byte(tinyDOT), 0o644))
	outPath := OutputPath(dotPath, FormatSVG)

	require.NoError(t, (&Builtin{}).Render(context.Background(), dotPath, FormatSVG, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "Embedding")
}

func TestBuiltinRenderKeepsTabsInLabels(t *testing.T) {
	cfg := &arch.Config{Stages: []arch.Stage{{
		Blocks: []arch.Block{{Type: arch.Ptr("MLP"), Details: arch.Ptr("dim:\t4096")}},
	}}}
	dot, err := diagram.ToDOT(cfg)
	require.NoError(t, err)

	svg, err := RenderBytes(context.Background(), []byte(dot), FormatSVG)
	require.NoError(t, err)
	assert.NotContains(t, string(svg), "dim:t4096")
	assert.Contains(t, string(svg), "4096")
}

func TestBuiltinRenderMissingFile(t *testing.T) {
	err := (&Builtin{}).Render(context.Background(), filepath.Join(t.TempDir(), "none.dot"), FormatSVG, "none.svg")
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestRenderBytesInvalidFormat(t *testing.T) {
	_, err := RenderBytes(context.Background(), []byte(tinyDOT), Format("gif"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}
