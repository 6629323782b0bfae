// Package render turns DOT files into images.
//
// # Engines
//
// Two [Renderer] implementations are available:
//
//   - [Graphviz] runs the external dot binary (dot -T<format> in.dot -o out).
//     This is the default and supports every [Format].
//   - [Builtin] lays out the graph in-process with go-graphviz. SVG and PNG
//     need no external tools; PDF is converted from the SVG with rsvg-convert.
//
// Use [New] to pick one by name:
//
//	r, err := render.New(render.EngineDot, "")
//	err = r.Render(ctx, "model.dot", render.FormatPNG, render.OutputPath("model.dot", render.FormatPNG))
//
// # Failures
//
// A missing tool is reported as [errors.ErrCodeToolNotFound] with install
// instructions. A tool that exits non-zero is reported as
// [errors.ErrCodeToolFailed] wrapping an [errors.ToolError] that carries the
// tool's stderr.
package render
