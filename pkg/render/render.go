package render

import (
	"context"
	"strings"

	"github.com/matzehuels/archviz/pkg/errors"
)

// Engine names a [Renderer] implementation.
const (
	EngineDot     = "dot"
	EngineBuiltin = "builtin"
)

// Renderer writes the image for a DOT file.
type Renderer interface {
	Render(ctx context.Context, dotPath string, f Format, outPath string) error
}

// New returns the renderer for engine. dotBinary overrides the dot
// executable used by [EngineDot]; it is ignored by the builtin engine.
func New(engine, dotBinary string) (Renderer, error) {
	switch strings.ToLower(engine) {
	case "", EngineDot:
		return &Graphviz{Binary: dotBinary}, nil
	case EngineBuiltin:
		return &Builtin{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidEngine, "unknown render engine %q (want dot or builtin)", engine)
	}
}
