package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file; empty means the DOT path with the format's extension
	format string // png, svg or pdf
	engine string // dot or builtin
}

// renderCommand creates the render command for existing DOT files.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: string(render.FormatPNG),
		engine: render.EngineDot,
	}

	cmd := &cobra.Command{
		Use:   "render [file.dot]",
		Short: "Render a DOT file to png, svg or pdf",
		Long: `Render a DOT file to png, svg or pdf.

Use this after 'diagram --dot-only' or to re-render a hand-edited DOT file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = stringFlag(cmd, "format", opts.format, c.Settings.Format)
			opts.engine = stringFlag(cmd, "engine", opts.engine, c.Settings.Engine)
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png (default), svg, pdf")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "render engine: dot (default), builtin")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	r, err := c.newRenderer(opts.engine)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = render.OutputPath(input, format)
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}

	outPath, err := renderDOT(ctx, r, input, format, output)
	if err != nil {
		return err
	}
	printSuccess("Generated diagram: %s", outPath)
	return nil
}

// newRenderer returns the renderer for engine, using the configured dot
// executable.
func (c *CLI) newRenderer(engine string) (render.Renderer, error) {
	return render.New(engine, c.Settings.DotPath)
}

// renderDOT renders dotPath with r while a spinner runs. An interrupt
// returns the context error without an error line.
func renderDOT(ctx context.Context, r render.Renderer, dotPath string, format render.Format, outPath string) (string, error) {
	logger := loggerFromContext(ctx)
	logger.Debug("rendering", "dot", dotPath, "format", format, "output", outPath)

	prog := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", outPath))
	spinner.Start()

	if err := r.Render(ctx, dotPath, format, outPath); err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return "", ctx.Err()
		}
		spinner.StopWithError("Error rendering diagram")
		return "", err
	}
	spinner.Stop()
	prog.done("Rendered " + outPath)

	return outPath, nil
}
